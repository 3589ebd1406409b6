package audio

import (
	"math"
	"time"

	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a short sound bound to an arena event.
type Cue int

const (
	CueFire Cue = iota
	CueHit
	CuePlayerHit
	CuePickup
	CueDeath
	CueWin
	CueLoss
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CuePlayerHit:
		return "player_hit"
	case CuePickup:
		return "pickup"
	case CueDeath:
		return "death"
	case CueWin:
		return "win"
	case CueLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// cueFor picks the cue for an event. Opponent shots are silent so a busy
// arena does not drown the player's own fire.
func cueFor(e game.Event, player game.EntityID) (Cue, bool) {
	switch e.Kind {
	case game.EventFire:
		return CueFire, e.Entity == player
	case game.EventHit:
		if e.Entity == player {
			return CuePlayerHit, true
		}
		return CueHit, true
	case game.EventPickup:
		return CuePickup, true
	case game.EventDeath:
		return CueDeath, true
	case game.EventStopped:
		if e.Detail == "win" {
			return CueWin, true
		}
		return CueLoss, true
	}
	return 0, false
}

// Streamer renders the cue at sample rate sr. Every cue is finite.
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueFire:
		return beep.Take(sr.N(60*time.Millisecond), NewNoiseBurst(sr, 0.35, 30))
	case CueHit:
		return tone(sr, 660, 50*time.Millisecond)
	case CuePlayerHit:
		return tone(sr, 180, 120*time.Millisecond)
	case CuePickup:
		return beep.Take(sr.N(150*time.Millisecond), NewChirp(sr, 440, 1320, 150*time.Millisecond))
	case CueDeath:
		return beep.Take(sr.N(300*time.Millisecond), NewNoiseBurst(sr, 0.5, 8))
	case CueWin:
		return beep.Seq(
			tone(sr, 523, 120*time.Millisecond),
			tone(sr, 659, 120*time.Millisecond),
			tone(sr, 784, 240*time.Millisecond),
		)
	default:
		return beep.Seq(
			tone(sr, 392, 160*time.Millisecond),
			tone(sr, 311, 160*time.Millisecond),
			tone(sr, 196, 320*time.Millisecond),
		)
	}
}

// tone is a quiet sine of fixed length.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), quiet(sine, 0.25))
}

// quiet scales s by a linear factor vol.
func quiet(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Chirp sweeps linearly from one frequency to another over a duration and
// holds the final frequency afterwards.
type Chirp struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirp creates a rising or falling sweep.
func NewChirp(sr beep.SampleRate, from, to float64, d time.Duration) *Chirp {
	return &Chirp{sr: sr, from: from, to: to, samples: max(1, sr.N(d))}
}

func (g *Chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.2 * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Chirp) Err() error {
	return nil
}

// NoiseBurst is exponentially decaying noise over a low rumble.
type NoiseBurst struct {
	sr    beep.SampleRate
	amp   float64
	decay float64
	pos   int
	seed  int64
}

// NewNoiseBurst creates a burst starting at amp and decaying at rate decay
// per second. The noise sequence is fixed so cues sound the same every time.
func NewNoiseBurst(sr beep.SampleRate, amp, decay float64) *NoiseBurst {
	return &NoiseBurst{sr: sr, amp: amp, decay: decay, seed: 1}
}

func (g *NoiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := g.amp * math.Exp(-t*g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := math.Sin(2 * math.Pi * 70 * t)

		sample := envelope * (0.6*noise + 0.4*rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurst) Err() error {
	return nil
}
