package display

import (
	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 24

// feedPanelWidth is the width of the event feed on the right.
const feedPanelWidth = 320

// Options configures the windowed frontend.
type Options struct {
	// Autopilot is shown in the HUD when the player is driven by a policy.
	Autopilot bool
	Log       zerolog.Logger
}

// Game hosts a match in an ebiten window: Update feeds input to the arena
// and runs the driver, Draw renders the arena view.
type Game struct {
	driver  *game.Driver
	pointer *game.Pointer
	feed    *game.FeedLog
	simLog  *game.SimLog
	face    *text.GoXFace
	log     zerolog.Logger

	width  int
	height int
	offX   int // pixel offset from window left to arena left
	offY   int // pixel offset from window top to arena top

	autopilot     bool
	showHelp      bool
	status        string // one-line notice under the HUD, e.g. after a copy
	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// New creates the frontend and subscribes its feed and log to the arena.
// pointer must be the aim target the player was created with.
func New(d *game.Driver, pointer *game.Pointer, opts Options) *Game {
	a := d.Arena()
	cfg := a.Config()
	g := &Game{
		driver:    d,
		pointer:   pointer,
		feed:      game.NewFeedLog(a.PlayerID()),
		simLog:    game.NewSimLog(false),
		face:      text.NewGoXFace(basicfont.Face7x13),
		log:       opts.Log.With().Str("component", "display").Logger(),
		width:     borderWidth + cfg.Width + borderWidth + feedPanelWidth,
		height:    borderWidth + cfg.Height + borderWidth,
		offX:      borderWidth,
		offY:      borderWidth,
		autopilot: opts.Autopilot,
		showHelp:  true,
		prevKeys:  make(map[ebiten.Key]bool),
	}
	a.AddSink(g.feed)
	a.AddSink(g.simLog)
	return g
}

// WindowSize returns the size the window should open at.
func (g *Game) WindowSize() (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	// Handle input every frame regardless of sim speed.
	g.handleInput()

	g.driver.Frame()
	if life, ok := g.driver.StoppedOverlay(); ok {
		a := g.driver.Arena()
		g.log.Info().Int("tick", a.Tick()).
			Int("opponents", a.LivingOpponents()).
			Str("state", life.State.String()).Msg("match over")
	}
	return nil
}

// pressed reports a key going down this frame and records it for the next.
func (g *Game) pressed(cur map[ebiten.Key]bool, k ebiten.Key) bool {
	cur[k] = ebiten.IsKeyPressed(k)
	return cur[k] && !g.prevKeys[k]
}

// handleInput turns keyboard and mouse state into player intents and
// frontend toggles.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	// Movement: held WASD or arrow keys, one step per frame.
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.driver.MovePlayer(game.DirUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.driver.MovePlayer(game.DirDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.driver.MovePlayer(game.DirLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.driver.MovePlayer(game.DirRight)
	}

	// Aim follows the cursor, in arena coordinates.
	mx, my := ebiten.CursorPosition()
	g.pointer.Set(float64(mx-g.offX), float64(my-g.offY))

	// Fire: left click or space, edge-triggered.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		g.driver.FirePlayer()
	}
	g.prevMouseLeft = mouseLeft
	if g.pressed(currentKeys, ebiten.KeySpace) {
		g.driver.FirePlayer()
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	if g.pressed(currentKeys, ebiten.KeyP) {
		g.driver.TogglePause()
	}
	if g.pressed(currentKeys, ebiten.KeyComma) {
		g.driver.Slower()
	}
	if g.pressed(currentKeys, ebiten.KeyPeriod) {
		g.driver.Faster()
	}

	// H: toggle help lines.
	if g.pressed(currentKeys, ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	// C: copy the match summary to the clipboard.
	if g.pressed(currentKeys, ebiten.KeyC) {
		g.copySummary()
	}

	g.prevKeys = currentKeys
}

func (g *Game) copySummary() {
	summary := g.simLog.Summary(g.driver.Arena())
	if err := clipboard.WriteAll(summary); err != nil {
		g.log.Warn().Err(err).Msg("clipboard copy failed")
		g.status = "copy failed: " + err.Error()
		return
	}
	g.status = "summary copied to clipboard"
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
