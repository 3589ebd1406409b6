package game

import (
	"fmt"
	"image/color"
)

// TestSim is a headless match harness used by tests and the headless report.
// It drives an Arena without any presentation and supports deterministic
// seeding, scripted randomness and structured logging.
type TestSim struct {
	Arena   *Arena
	SimLog  *SimLog
	Pointer *Pointer
	Config  Config

	rng       Rand
	player    *spawnSpec
	opponents []spawnSpec
	autopilot Policy
	extra     []Option
}

type spawnSpec struct {
	pos    Vec
	stats  Stats
	policy Policy
	aim    Target
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // infrastructure, applied first
	simOptEntity                      // player and opponents, applied after the config is final
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithArenaSize sets the playfield dimensions.
func WithArenaSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.Width = w
		ts.Config.Height = h
	}}
}

// WithConfig edits the match configuration.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { edit(&ts.Config) }}
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.rng = NewRand(seed) }}
}

// WithSimRand injects a random source, typically a scripted one.
func WithSimRand(r Rand) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.rng = r }}
}

// WithVerbose enables verbose logging of expiries and per-tick positions.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.SimLog = NewSimLog(v) }}
}

// WithArenaOption passes an option straight to the arena.
func WithArenaOption(o Option) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.extra = append(ts.extra, o) }}
}

// WithPlayerAt places the player at (x,y) with the configured player stats.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.player = &spawnSpec{pos: Vec{X: x, Y: y}, stats: ts.Config.PlayerStats()}
	}}
}

// WithAutopilot hands the player to a HunterPolicy holding at standoff.
func WithAutopilot(standoff float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) { ts.autopilot = NewHunterPolicy(standoff) }}
}

// WithOpponentAt adds a wandering opponent at (x,y).
func WithOpponentAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.opponents = append(ts.opponents, spawnSpec{
			pos:    Vec{X: x, Y: y},
			stats:  ts.Config.OpponentStats(),
			policy: NewWanderPolicy(ts.Config.PolicyInterval, ts.Config.EnemyShootChance),
		})
	}}
}

// WithRandomOpponents adds n wandering opponents at uniform points kept a
// hull size away from the walls, drawn from the sim's random source.
func WithRandomOpponents(n int) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		size := int(ts.Config.TankSize)
		for i := 0; i < n; i++ {
			pos := randomPoint(ts.rng, size, ts.Config.Width-size, size, ts.Config.Height-size)
			ts.opponents = append(ts.opponents, spawnSpec{
				pos:    pos,
				stats:  ts.Config.OpponentStats(),
				policy: NewWanderPolicy(ts.Config.PolicyInterval, ts.Config.EnemyShootChance),
			})
		}
	}}
}

// WithIdleOpponentAt adds an opponent with no policy aiming at target. It
// never moves or fires on its own.
func WithIdleOpponentAt(x, y float64, target Target) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.opponents = append(ts.opponents, spawnSpec{
			pos:   Vec{X: x, Y: y},
			stats: ts.Config.OpponentStats(),
			aim:   target,
		})
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (config, seed, verbose)
//  2. Entities (player, opponents)
//
// Without WithPlayerAt the player starts at the configured position. Pickups
// never spawn unless the config enables them, and opponents are only the
// ones added explicitly.
func NewTestSim(opts ...SimOption) (*TestSim, error) {
	cfg := DefaultConfig()
	cfg.OpponentCount = 0
	cfg.PickupSpawnChance = 0
	ts := &TestSim{
		Config:  cfg,
		SimLog:  NewSimLog(false),
		Pointer: &Pointer{},
		rng:     NewRand(1),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	if ts.player == nil {
		ts.player = &spawnSpec{pos: Vec{X: ts.Config.PlayerX, Y: ts.Config.PlayerY}, stats: ts.Config.PlayerStats()}
	}

	arenaOpts := append([]Option{WithRand(ts.rng), WithSink(ts.SimLog)}, ts.extra...)
	a, err := NewArena(ts.Config, arenaOpts...)
	if err != nil {
		return nil, fmt.Errorf("test sim: %w", err)
	}
	ts.Arena = a

	pid := a.AddPlayer(NewCombatant("P", ts.player.pos, ts.player.stats, PlayerColor, ts.Pointer, ts.autopilot))
	for i, o := range ts.opponents {
		aim := o.aim
		if aim == nil {
			aim = Tracking(pid)
		}
		a.AddOpponent(NewCombatant(fmt.Sprintf("E%d", i+1), o.pos, o.stats, OpponentColor, aim, o.policy))
	}
	return ts, nil
}

// Player returns the player combatant, alive or destroyed.
func (ts *TestSim) Player() *Combatant {
	c, _ := ts.Arena.Record(ts.Arena.PlayerID())
	return c
}

// Opponent returns the i-th opponent (1-based, matching its label), alive or
// destroyed.
func (ts *TestSim) Opponent(i int) *Combatant {
	c, _ := ts.Arena.Record(ts.Arena.PlayerID() + EntityID(i))
	return c
}

// OpponentsTotal returns how many opponents the match started with.
func (ts *TestSim) OpponentsTotal() int { return len(ts.opponents) }

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.Arena.Tick()
		}
	}
	return -1
}

// RunMatch plays until the match stops or maxTicks elapse.
func (ts *TestSim) RunMatch(maxTicks int) MatchResult {
	ts.RunUntil(func(s *TestSim) bool { return !s.Arena.Running() }, maxTicks)
	return DetermineOutcome(ts.Arena, len(ts.opponents))
}

// runOneTick advances the arena and records verbose positions.
func (ts *TestSim) runOneTick() {
	ts.Arena.Advance()
	tick := ts.Arena.Tick()
	for _, c := range ts.Arena.Combatants() {
		ts.SimLog.AddVerbose(tick, c.label, "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", c.pos.X, c.pos.Y), 0)
	}
}

// Snapshot captures a lightweight state summary.
type SimSnapshot struct {
	Tick       int
	Lifecycle  Lifecycle
	Combatants []CombatantSnapshot
}

// CombatantSnapshot is a lightweight copy of a combatant's state at a tick.
type CombatantSnapshot struct {
	ID     EntityID
	Label  string
	X, Y   float64
	HP     int
	Power  int
	Speed  float64
	Colour color.RGBA
}

// Snapshot returns the current state of all live combatants.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.Arena.Tick(), Lifecycle: ts.Arena.Lifecycle()}
	for _, c := range ts.Arena.Combatants() {
		snap.Combatants = append(snap.Combatants, CombatantSnapshot{
			ID:     c.id,
			Label:  c.label,
			X:      c.pos.X,
			Y:      c.pos.Y,
			HP:     c.hp,
			Power:  c.power,
			Speed:  c.speed,
			Colour: c.color,
		})
	}
	return snap
}
