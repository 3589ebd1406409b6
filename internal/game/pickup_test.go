package game

import "testing"

func TestPickup_PowerCapsAtMax(t *testing.T) {
	c := NewCombatant("P", Vec{}, DefaultConfig().PlayerStats(), PlayerColor, nil, nil)
	c.power = 48
	newPickup(Vec{}, PickupPower, 5, 1).OnConsume(c)
	if c.Power() != 50 {
		t.Fatalf("expected power capped at 50, got %d", c.Power())
	}
}

func TestPickup_SpeedCapsAtMax(t *testing.T) {
	c := NewCombatant("P", Vec{}, DefaultConfig().PlayerStats(), PlayerColor, nil, nil)
	c.speed = 9.5
	newPickup(Vec{}, PickupSpeed, 5, 1).OnConsume(c)
	if c.Speed() != 10 {
		t.Fatalf("expected speed capped at 10, got %v", c.Speed())
	}
}

func TestPickup_HealRestoresFullHealth(t *testing.T) {
	c := NewCombatant("P", Vec{}, DefaultConfig().PlayerStats(), PlayerColor, nil, nil)
	c.ReceiveDamage(70)
	newPickup(Vec{}, PickupHeal, 5, 1).OnConsume(c)
	if c.HP() != c.MaxHP() {
		t.Fatalf("expected full health, got %d", c.HP())
	}
}

func TestSpawnPickup_FromRoll(t *testing.T) {
	r := &scriptedRand{floats: []float64{0}, ints: []int{int(PickupHeal), 300, 400}}
	a := newTestArena(t, func(c *Config) { c.PickupSpawnChance = 0.01 }, WithRand(r))
	a.AddPlayer(NewCombatant("P", Vec{X: 100, Y: 100}, a.cfg.PlayerStats(), PlayerColor, nil, nil))

	a.Advance()
	pk, ok := a.ActivePickup()
	if !ok {
		t.Fatal("a successful roll should spawn a pickup")
	}
	if pk.PickupKind() != PickupHeal || pk.Position() != (Vec{X: 300, Y: 400}) {
		t.Fatalf("unexpected pickup %s at %+v", pk.PickupKind(), pk.Position())
	}
}

func TestSpawnPickup_AtMostOneActive(t *testing.T) {
	r := &scriptedRand{ints: []int{0, 300, 400, 1, 500, 500}}
	a := newTestArena(t, nil, WithRand(r))
	if _, ok := a.SpawnPickup(); !ok {
		t.Fatal("first spawn should succeed")
	}
	if _, ok := a.SpawnPickup(); ok {
		t.Fatal("second spawn must be refused while one is active")
	}
	if a.PickupCount() != 1 || countKind(a, KindPickup) != 1 {
		t.Fatalf("expected exactly one pickup, got %d", countKind(a, KindPickup))
	}
}

func TestSpawnPickup_NoRollWhileActive(t *testing.T) {
	// Every roll would succeed, yet the floor never holds two pickups.
	r := &scriptedRand{floats: []float64{0, 0, 0, 0, 0}}
	a := newTestArena(t, func(c *Config) { c.PickupSpawnChance = 1 }, WithRand(r))
	for i := 0; i < 5; i++ {
		a.Advance()
		if n := countKind(a, KindPickup); n > 1 {
			t.Fatalf("tick %d: %d pickups on the floor", a.Tick(), n)
		}
	}
}

func TestPickup_ConsumedWithinHullRadius(t *testing.T) {
	r := &scriptedRand{ints: []int{int(PickupPower), 110, 100}}
	ts := newTestSim(t, WithSimRand(r), WithPlayerAt(100, 100))
	a := ts.Arena
	id, _ := a.SpawnPickup()

	ts.RunTicks(1)
	if _, ok := a.Entity(id); ok {
		t.Fatal("pickup within the hull radius should be consumed")
	}
	if a.PickupCount() != 0 {
		t.Fatal("active pickup slot should be cleared")
	}
	if ts.Player().Power() != 35 {
		t.Fatalf("expected power 35, got %d", ts.Player().Power())
	}
	if !ts.SimLog.HasEntry("pickup", "consume", "power") {
		t.Fatalf("consume not logged:\n%s", ts.SimLog.Format())
	}
}

func TestPickup_OutOfReachStays(t *testing.T) {
	r := &scriptedRand{ints: []int{int(PickupSpeed), 121, 100}}
	ts := newTestSim(t, WithSimRand(r), WithPlayerAt(100, 100))
	ts.Arena.SpawnPickup()
	ts.RunTicks(3)
	if ts.Arena.PickupCount() != 1 {
		t.Fatal("pickup beyond the hull radius must stay")
	}
}

func TestPickup_OpponentsCollectToo(t *testing.T) {
	r := &scriptedRand{ints: []int{int(PickupHeal), 400, 400}}
	ts := newTestSim(t, WithSimRand(r), WithPlayerAt(100, 100), WithIdleOpponentAt(405, 400, nil))
	e := ts.Opponent(1)
	e.ReceiveDamage(50)
	ts.Arena.SpawnPickup()
	ts.RunTicks(1)
	if e.HP() != e.MaxHP() {
		t.Fatalf("opponent should have healed, hp=%d", e.HP())
	}
}

func TestRemoveEntity_ClearsActivePickup(t *testing.T) {
	a := newTestArena(t, nil)
	id, _ := a.SpawnPickup()
	a.RemoveEntity(id)
	if _, ok := a.ActivePickup(); ok {
		t.Fatal("removed pickup still reported active")
	}
	if _, ok := a.SpawnPickup(); !ok {
		t.Fatal("a new pickup should be allowed after removal")
	}
}
