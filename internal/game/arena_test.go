package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewArena_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewArena(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	cfg = DefaultConfig()
	cfg.EnemyShootChance = 1.5
	if _, err := NewArena(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for chance > 1, got %v", err)
	}
}

func TestNewMatch_PopulatesArena(t *testing.T) {
	cfg := DefaultConfig()
	a, err := NewMatch(cfg, &Pointer{}, WithSeed(42))
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	if a.Len() != 1+cfg.OpponentCount || a.LivingOpponents() != cfg.OpponentCount {
		t.Fatalf("expected player plus %d opponents, got len=%d living=%d", cfg.OpponentCount, a.Len(), a.LivingOpponents())
	}
	p, ok := a.Player()
	if !ok || p.Position() != (Vec{X: cfg.PlayerX, Y: cfg.PlayerY}) {
		t.Fatalf("player missing or misplaced: %+v", p)
	}
	for _, c := range a.Combatants() {
		if c.ID() == a.PlayerID() {
			continue
		}
		pos := c.Position()
		if pos.X < cfg.TankSize || pos.X > float64(cfg.Width)-cfg.TankSize ||
			pos.Y < cfg.TankSize || pos.Y > float64(cfg.Height)-cfg.TankSize {
			t.Fatalf("%s spawned against the wall at %+v", c.Label(), pos)
		}
		if got, ok := c.aim.Resolve(a); !ok || got != p.Position() {
			t.Fatalf("%s should aim at the player, aims at %+v", c.Label(), got)
		}
	}
}

func TestRemoveEntity_Idempotent(t *testing.T) {
	a := newTestArena(t, nil)
	id := a.AddEntity(&probe{})
	a.RemoveEntity(id)
	a.RemoveEntity(id)
	a.RemoveEntity(999)
	if a.Len() != 0 {
		t.Fatalf("expected empty arena, got %d", a.Len())
	}
}

func TestAdvance_IncrementsTickOnce(t *testing.T) {
	a := newTestArena(t, nil)
	pr := &probe{}
	a.AddEntity(pr)
	for i := 1; i <= 3; i++ {
		a.Advance()
		if a.Tick() != i || pr.updates != i {
			t.Fatalf("after %d advances: tick=%d updates=%d", i, a.Tick(), pr.updates)
		}
	}
}

func TestAdvance_RemovedMidPassIsSkipped(t *testing.T) {
	a := newTestArena(t, nil)
	victim := &probe{}
	killer := &probe{}
	a.AddEntity(killer)
	vid := a.AddEntity(victim)
	killer.onTick = func(_ *probe, a *Arena) { a.RemoveEntity(vid) }

	a.Advance()
	if victim.updates != 0 {
		t.Fatalf("entity removed earlier in the pass was updated %d times", victim.updates)
	}
	a.Advance()
	if killer.updates != 2 || a.Len() != 1 {
		t.Fatalf("expected survivor updated twice and alone, got updates=%d len=%d", killer.updates, a.Len())
	}
}

func TestAdvance_SelfRemovalDoesNotSkipNext(t *testing.T) {
	a := newTestArena(t, nil)
	first := &probe{onTick: func(p *probe, a *Arena) { a.RemoveEntity(p.ID()) }}
	second := &probe{}
	a.AddEntity(first)
	a.AddEntity(second)
	a.Advance()
	if second.updates != 1 {
		t.Fatalf("entity after a self-removing one was updated %d times", second.updates)
	}
}

func TestAdvance_AddedMidPassWaitsForNextTick(t *testing.T) {
	a := newTestArena(t, nil)
	child := &probe{}
	spawned := false
	parent := &probe{onTick: func(_ *probe, a *Arena) {
		if !spawned {
			a.AddEntity(child)
			spawned = true
		}
	}}
	a.AddEntity(parent)

	a.Advance()
	if child.updates != 0 {
		t.Fatal("entity added during a pass must not update in that pass")
	}
	a.Advance()
	if child.updates != 1 {
		t.Fatalf("expected one update on the next tick, got %d", child.updates)
	}
}

func TestAdvance_NoopAfterStop(t *testing.T) {
	a := newTestArena(t, nil)
	pr := &probe{}
	a.AddEntity(pr)
	a.Advance()
	a.stop(LossColor, "loss")
	a.Advance()
	if a.Tick() != 1 || pr.updates != 1 {
		t.Fatalf("stopped arena advanced: tick=%d updates=%d", a.Tick(), pr.updates)
	}
}

func TestMatch_WinWhenLastOpponentDies(t *testing.T) {
	ts := newTestSim(t,
		WithConfig(func(c *Config) { c.ReloadTicks = 1 }),
		WithPlayerAt(100, 100),
		WithIdleOpponentAt(300, 100, nil),
	)
	ts.Pointer.Set(300, 100)
	a := ts.Arena

	for i := 0; i < 300 && a.Running(); i++ {
		ts.RunTicks(1)
		a.FirePlayer()
	}

	life := a.Lifecycle()
	if life.State != StateStopped || life.Overlay != WinColor {
		t.Fatalf("expected win overlay, got %+v\n%s", life, ts.SimLog.Format())
	}
	if a.LivingOpponents() != 0 {
		t.Fatalf("expected no opponents left, got %d", a.LivingOpponents())
	}
	if _, ok := a.Combatant(ts.Opponent(1).ID()); ok {
		t.Fatal("destroyed opponent still registered")
	}
	if !ts.SimLog.HasEntry("state", "stopped", "win") {
		t.Fatalf("stop not logged:\n%s", ts.SimLog.Format())
	}
	res := DetermineOutcome(a, ts.OpponentsTotal())
	if res.Outcome != OutcomeVictory || res.PlayerHits < 4 {
		t.Fatalf("expected victory with at least 4 hits, got %+v", res)
	}
}

func TestMatch_LossWhenPlayerDies(t *testing.T) {
	ts := newTestSim(t,
		WithConfig(func(c *Config) {
			c.ReloadTicks = 1
			c.EnemyPower = 50
		}),
		WithPlayerAt(100, 100),
		WithIdleOpponentAt(300, 100, nil),
	)
	a := ts.Arena
	e := ts.Opponent(1)

	for i := 0; i < 300 && a.Running(); i++ {
		ts.RunTicks(1)
		e.Fire(a)
	}

	life := a.Lifecycle()
	if life.State != StateStopped || life.Overlay != LossColor {
		t.Fatalf("expected loss overlay, got %+v", life)
	}
	if _, ok := a.Player(); ok {
		t.Fatal("destroyed player still registered")
	}
	res := DetermineOutcome(a, ts.OpponentsTotal())
	if res.Outcome != OutcomeDefeat || res.PlayerHP != 0 || res.OpponentsLeft != 1 {
		t.Fatalf("unexpected result %+v", res)
	}

	// A second stop must not repaint or re-announce.
	a.stop(WinColor, "win")
	if a.Lifecycle().Overlay != LossColor {
		t.Fatal("overlay changed after the match stopped")
	}
	if n := ts.SimLog.CountCategory("state", "stopped"); n != 1 {
		t.Fatalf("expected one stop entry, got %d", n)
	}
}

func TestMatch_DeathHandledOnVictimsOwnUpdate(t *testing.T) {
	ts := newTestSim(t, WithPlayerAt(100, 100), WithIdleOpponentAt(400, 400, nil))
	e := ts.Opponent(1)
	e.ReceiveDamage(e.MaxHP())
	if ts.Arena.LivingOpponents() != 1 {
		t.Fatal("death must wait for the victim's update")
	}
	ts.RunTicks(1)
	if ts.Arena.LivingOpponents() != 0 || ts.Arena.Running() {
		t.Fatal("opponent at zero health should be removed and end the match")
	}
}

func TestMatch_SeededRunsAreIdentical(t *testing.T) {
	run := func() (SimSnapshot, string) {
		ts := newTestSim(t,
			WithSimSeed(7),
			WithConfig(func(c *Config) {
				c.PickupSpawnChance = 0.02
				c.EnemyShootChance = 0.05
			}),
			WithAutopilot(150),
			WithOpponentAt(500, 150),
			WithOpponentAt(300, 550),
			WithOpponentAt(600, 600),
		)
		ts.RunMatch(3000)
		return ts.Snapshot(), ts.SimLog.Format()
	}
	snapA, logA := run()
	snapB, logB := run()
	if !reflect.DeepEqual(snapA, snapB) {
		t.Fatalf("snapshots differ:\n%+v\n%+v", snapA, snapB)
	}
	if logA != logB {
		t.Fatal("event logs differ between identical seeds")
	}
}
