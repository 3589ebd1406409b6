package terminal

import (
	"context"
	"time"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// App hosts a match in a terminal. Screen events are pumped on their own
// goroutine; the arena is only touched from the Run loop.
type App struct {
	screen  tcell.Screen
	driver  *game.Driver
	pointer *game.Pointer
	frame   time.Duration
	log     zerolog.Logger

	cols, rows int
}

// NewApp binds an initialised screen to a driver. pointer must be the aim
// target the player was created with.
func NewApp(screen tcell.Screen, d *game.Driver, pointer *game.Pointer, frame time.Duration, log zerolog.Logger) *App {
	screen.EnableMouse()
	screen.HideCursor()
	cols, rows := screen.Size()
	return &App{
		screen:  screen,
		driver:  d,
		pointer: pointer,
		frame:   frame,
		log:     log.With().Str("component", "terminal").Logger(),
		cols:    cols,
		rows:    rows,
	}
}

// Run plays until the user quits or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(app.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !app.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			app.driver.Frame()
			if life, ok := app.driver.StoppedOverlay(); ok {
				app.log.Info().Int("tick", app.driver.Arena().Tick()).
					Int("opponents", app.driver.Arena().LivingOpponents()).
					Str("state", life.State.String()).Msg("match over")
			}
			app.draw()
		}
	}
}

// handleEvent applies one input event. It returns false to quit.
func (app *App) handleEvent(ev tcell.Event) bool {
	a := app.driver.Arena()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			app.driver.MovePlayer(game.DirUp)
		case tcell.KeyDown:
			app.driver.MovePlayer(game.DirDown)
		case tcell.KeyLeft:
			app.driver.MovePlayer(game.DirLeft)
		case tcell.KeyRight:
			app.driver.MovePlayer(game.DirRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				app.driver.MovePlayer(game.DirUp)
			case 's':
				app.driver.MovePlayer(game.DirDown)
			case 'a':
				app.driver.MovePlayer(game.DirLeft)
			case 'd':
				app.driver.MovePlayer(game.DirRight)
			case ' ':
				app.driver.FirePlayer()
			case 'p':
				app.driver.TogglePause()
			case ',':
				app.driver.Slower()
			case '.':
				app.driver.Faster()
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		if y < app.rows-statusRows {
			p := ToArena(a.View(), app.cols, app.rows, x, y)
			app.pointer.Set(p.X, p.Y)
		}
		if ev.Buttons()&tcell.Button1 != 0 {
			app.driver.FirePlayer()
		}
	case *tcell.EventResize:
		app.cols, app.rows = app.screen.Size()
		app.screen.Sync()
	}
	return true
}

func (app *App) draw() {
	g := Project(app.driver.Arena().View(), app.cols, app.rows, app.driver.Speed())
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			c := g.At(x, y)
			app.screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	app.screen.Show()
}
