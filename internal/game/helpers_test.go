package game

import "testing"

// scriptedRand replays queued draws. Once a queue runs dry Float64 returns a
// value just under 1 (no chance roll succeeds) and Intn returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// probe is a test entity recording its updates.
type probe struct {
	body
	solid   bool
	radius  float64
	updates int
	onTick  func(p *probe, a *Arena)
}

func (p *probe) Kind() Kind      { return KindPickup + 100 }
func (p *probe) Radius() float64 { return p.radius }
func (p *probe) Solid() bool     { return p.solid }
func (p *probe) UpdateTick(a *Arena) {
	p.updates++
	if p.onTick != nil {
		p.onTick(p, a)
	}
}

func newTestArena(t *testing.T, edit func(*Config), opts ...Option) *Arena {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OpponentCount = 0
	cfg.PickupSpawnChance = 0
	if edit != nil {
		edit(&cfg)
	}
	if len(opts) == 0 {
		opts = []Option{WithRand(&scriptedRand{})}
	}
	a, err := NewArena(cfg, opts...)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	return a
}

func newTestSim(t *testing.T, opts ...SimOption) *TestSim {
	t.Helper()
	ts, err := NewTestSim(opts...)
	if err != nil {
		t.Fatalf("NewTestSim: %v", err)
	}
	return ts
}

func countKind(a *Arena, k Kind) int {
	n := 0
	a.each(func(e Entity) bool {
		if e.Kind() == k {
			n++
		}
		return true
	})
	return n
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
