package game

import "testing"

func TestProjectile_DirectionFixedAtSpawn(t *testing.T) {
	ts := newTestSim(t, WithPlayerAt(100, 100), WithIdleOpponentAt(600, 600, nil))
	a := ts.Arena
	e := ts.Opponent(1)
	ts.Pointer.Set(100, 600)

	ts.RunTicks(1)
	e.SetAim(Tracking(a.PlayerID()))
	if !e.Fire(a) {
		t.Fatal("opponent should fire")
	}
	var shell *Projectile
	a.each(func(en Entity) bool {
		if en.Kind() == KindProjectile {
			shell = en.(*Projectile)
		}
		return true
	})
	if shell == nil {
		t.Fatal("no shell spawned")
	}
	dir := shell.Direction()
	origin := shell.origin

	// The target runs away; the shell must keep its line.
	ts.Player().pos = Vec{X: 650, Y: 50}
	for i := 0; i < 10 && a.Len() > 2; i++ {
		ts.RunTicks(1)
		if shell.Direction() != dir {
			t.Fatalf("direction changed from %+v to %+v", dir, shell.Direction())
		}
		want := origin.Add(dir.Scale(shell.traveled))
		if !approx(shell.Position().X, want.X) || !approx(shell.Position().Y, want.Y) {
			t.Fatalf("shell left its line: at %+v, want %+v", shell.Position(), want)
		}
	}
}

func TestProjectile_HitsFirstCombatantAndDisappears(t *testing.T) {
	a := newTestArena(t, nil)
	p := NewCombatant("P", Vec{X: 100, Y: 100}, a.cfg.PlayerStats(), PlayerColor, nil, nil)
	e := NewCombatant("E1", Vec{X: 175, Y: 100}, a.cfg.OpponentStats(), OpponentColor, nil, nil)
	pid := a.AddPlayer(p)
	a.AddOpponent(e)

	shell := newProjectile(Vec{X: 140, Y: 100}, Vec{X: 600, Y: 100}, 10, 30, pid)
	sid := a.AddEntity(shell)

	a.Advance() // shell at 150: distance 25 > 20
	if e.HP() != e.MaxHP() {
		t.Fatalf("hit registered too early, hp=%d", e.HP())
	}
	a.Advance() // shell at 160: distance 15 <= 20
	if e.HP() != e.MaxHP()-30 {
		t.Fatalf("expected 30 damage, hp=%d", e.HP())
	}
	if _, ok := a.Entity(sid); ok {
		t.Fatal("shell should be removed after a hit")
	}
	if p.hits != 1 {
		t.Fatalf("hit should be credited to owner, got %d", p.hits)
	}
}

func TestProjectile_IgnoresOwner(t *testing.T) {
	a := newTestArena(t, nil)
	p := NewCombatant("P", Vec{X: 100, Y: 100}, a.cfg.PlayerStats(), PlayerColor, nil, nil)
	pid := a.AddPlayer(p)

	// Aimed backwards through its own hull.
	shell := newProjectile(Vec{X: 130, Y: 100}, Vec{X: 0, Y: 100}, 10, 30, pid)
	a.AddEntity(shell)
	for i := 0; i < 5; i++ {
		a.Advance()
	}
	if p.HP() != p.MaxHP() {
		t.Fatalf("owner damaged by its own shell, hp=%d", p.HP())
	}
}

func TestProjectile_FriendlyFireBetweenOpponents(t *testing.T) {
	a := newTestArena(t, nil)
	a.AddPlayer(NewCombatant("P", Vec{X: 600, Y: 600}, a.cfg.PlayerStats(), PlayerColor, nil, nil))
	e1 := NewCombatant("E1", Vec{X: 100, Y: 100}, a.cfg.OpponentStats(), OpponentColor, nil, nil)
	e2 := NewCombatant("E2", Vec{X: 200, Y: 100}, a.cfg.OpponentStats(), OpponentColor, nil, nil)
	id1 := a.AddOpponent(e1)
	a.AddOpponent(e2)

	a.AddEntity(newProjectile(Vec{X: 140, Y: 100}, Vec{X: 600, Y: 100}, 10, 10, id1))
	for i := 0; i < 5; i++ {
		a.Advance()
	}
	if e2.HP() != e2.MaxHP()-10 {
		t.Fatalf("opponent shell should hit another opponent, hp=%d", e2.HP())
	}
}

func TestProjectile_OutOfBoundsRemovedWithoutHit(t *testing.T) {
	a := newTestArena(t, func(c *Config) { c.Width, c.Height = 100, 100 })
	pid := a.AddPlayer(NewCombatant("P", Vec{X: 20, Y: 80}, a.cfg.PlayerStats(), PlayerColor, nil, nil))
	// Sits exactly where the shell lands after crossing the wall.
	e := NewCombatant("E1", Vec{X: 105, Y: 50}, a.cfg.OpponentStats(), OpponentColor, nil, nil)
	a.AddOpponent(e)

	sid := a.AddEntity(newProjectile(Vec{X: 95, Y: 50}, Vec{X: 200, Y: 50}, 10, 30, pid))
	a.Advance()
	if _, ok := a.Entity(sid); ok {
		t.Fatal("shell outside the arena should be removed on the crossing tick")
	}
	if e.HP() != e.MaxHP() {
		t.Fatalf("out-of-bounds shell must not hit, hp=%d", e.HP())
	}
}

func TestProjectile_OnBoundaryStillInside(t *testing.T) {
	a := newTestArena(t, func(c *Config) { c.Width, c.Height = 100, 100 })
	pid := a.AddPlayer(NewCombatant("P", Vec{X: 20, Y: 80}, a.cfg.PlayerStats(), PlayerColor, nil, nil))
	sid := a.AddEntity(newProjectile(Vec{X: 90, Y: 50}, Vec{X: 200, Y: 50}, 10, 30, pid))
	a.Advance() // lands exactly on x=100
	if _, ok := a.Entity(sid); !ok {
		t.Fatal("shell on the boundary is still inside")
	}
	a.Advance()
	if _, ok := a.Entity(sid); ok {
		t.Fatal("shell past the boundary should be gone")
	}
}

func TestProjectile_DegenerateRemoved(t *testing.T) {
	a := newTestArena(t, nil)
	pid := a.AddPlayer(NewCombatant("P", Vec{X: 100, Y: 100}, a.cfg.PlayerStats(), PlayerColor, nil, nil))
	sid := a.AddEntity(newProjectile(Vec{X: 300, Y: 300}, Vec{X: 300, Y: 300}, 10, 30, pid))
	a.Advance()
	if _, ok := a.Entity(sid); ok {
		t.Fatal("shell without a direction should be dropped")
	}
}
