package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Player turns arena events into sound. It is an EventSink; until Init
// succeeds it drops every event, so a machine without audio still plays.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	player      game.EntityID
	initialized bool
	played      map[Cue]int
	log         zerolog.Logger
}

// NewPlayer creates a silent player. player is the id whose shots and hits
// get the player-specific cues.
func NewPlayer(player game.EntityID, log zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		player: player,
		played: make(map[Cue]int),
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug().Int("sampleRate", int(sampleRate)).Msg("audio ready")
	return nil
}

// OnEvent queues the cue for e, if any.
func (p *Player) OnEvent(e game.Event) {
	cue, ok := cueFor(e, p.player)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[cue]++
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(cue.Streamer(sampleRate))
	speaker.Unlock()
}

// Played returns how many times cue was triggered, audible or not.
func (p *Player) Played(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[cue]
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
