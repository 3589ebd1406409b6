package game

import (
	"image/color"
	"math"
)

// barrelLength is how far past the hull edge the gun muzzle sits.
const barrelLength = 20.0

// Stats is the starting stat block of a combatant.
type Stats struct {
	Size        float64
	Speed       float64
	MaxSpeed    float64
	MaxHP       int
	Power       int
	MaxPower    int
	ReloadTicks int
}

// Policy drives a combatant without outside input. It runs once per tick from
// the combatant's own update, after pickup collection.
type Policy interface {
	Decide(c *Combatant, a *Arena)
}

// Combatant is a tank: the player or an opponent. Opponents differ only by an
// attached Policy.
type Combatant struct {
	body
	label string
	color color.RGBA

	size     float64
	speed    float64
	maxSpeed float64
	hp       int
	maxHP    int
	power    int
	maxPower int

	reloadTicks  int
	lastFireTick int // 0 = never fired

	aim    Target
	policy Policy

	shots int
	hits  int
}

// NewCombatant creates a combatant at pos with full health.
func NewCombatant(label string, pos Vec, st Stats, clr color.RGBA, aim Target, policy Policy) *Combatant {
	return &Combatant{
		body:        body{pos: pos},
		label:       label,
		color:       clr,
		size:        st.Size,
		speed:       st.Speed,
		maxSpeed:    st.MaxSpeed,
		hp:          st.MaxHP,
		maxHP:       st.MaxHP,
		power:       st.Power,
		maxPower:    st.MaxPower,
		reloadTicks: st.ReloadTicks,
		aim:         aim,
		policy:      policy,
	}
}

func (c *Combatant) Kind() Kind        { return KindCombatant }
func (c *Combatant) Radius() float64   { return c.size }
func (c *Combatant) Solid() bool       { return true }
func (c *Combatant) Label() string     { return c.label }
func (c *Combatant) Color() color.RGBA { return c.color }
func (c *Combatant) HP() int           { return c.hp }
func (c *Combatant) MaxHP() int        { return c.maxHP }
func (c *Combatant) Power() int        { return c.power }
func (c *Combatant) Speed() float64    { return c.speed }
func (c *Combatant) LastFireTick() int { return c.lastFireTick }
func (c *Combatant) Alive() bool       { return c.hp > 0 }

// SetAim replaces the aim target.
func (c *Combatant) SetAim(t Target) { c.aim = t }

// SetPolicy replaces the per-tick brain. A nil policy leaves the combatant to
// external intents.
func (c *Combatant) SetPolicy(p Policy) { c.policy = p }

// UpdateTick runs the combatant's per-tick pipeline: death check, pickup
// collection, then its policy.
func (c *Combatant) UpdateTick(a *Arena) {
	if c.hp <= 0 {
		a.handleDeath(c)
		return
	}
	if p, ok := a.ActivePickup(); ok && Distance(c.pos, p.pos) <= c.size {
		a.ConsumePickup(c)
	}
	if c.policy != nil {
		c.policy.Decide(c, a)
	}
}

// Ready reports whether the reload gate is open at tick.
func (c *Combatant) Ready(tick int) bool {
	return c.lastFireTick == 0 || c.lastFireTick+c.reloadTicks <= tick
}

// Fire spawns a projectile toward the aim target if the weapon has reloaded.
// Firing while reloading, or with nothing to aim at, does nothing.
func (c *Combatant) Fire(a *Arena) bool {
	tick := a.Tick()
	if !c.Ready(tick) {
		return false
	}
	target, ok := c.aimTarget(a)
	if !ok {
		return false
	}
	p := newProjectile(c.AimPoint(a), target, a.cfg.ProjectileSpeed, c.power, c.id)
	a.AddEntity(p)
	c.lastFireTick = tick
	c.shots++
	a.emit(Event{Tick: tick, Kind: EventFire, Entity: c.id, Other: p.id, Label: c.label, Value: float64(c.power)})
	return true
}

func (c *Combatant) aimTarget(a *Arena) (Vec, bool) {
	if c.aim == nil {
		return Vec{}, false
	}
	return c.aim.Resolve(a)
}

// AimPoint is the muzzle: size+barrelLength from the centre toward the aim
// target. With no usable direction the centre itself is returned.
func (c *Combatant) AimPoint(a *Arena) Vec {
	target, ok := c.aimTarget(a)
	if !ok {
		return c.pos
	}
	return PointAlong(c.pos, target, c.size+barrelLength)
}

// CanMove reports whether a step in dir is free of other solid entities. The
// test is a box check, not a swept one: an entity blocks when it overlaps on
// both axes within the summed radii and lies on the side being moved toward.
func (c *Combatant) CanMove(a *Arena, dir Direction) bool {
	free := true
	a.each(func(e Entity) bool {
		if e.ID() == c.id || !e.Solid() {
			return true
		}
		o := e.Position()
		dx := c.pos.X - o.X
		dy := c.pos.Y - o.Y
		r := c.size + e.Radius()
		near := math.Abs(dy) <= r && math.Abs(dx) < r
		if !near {
			return true
		}
		switch dir {
		case DirUp:
			free = dy <= 0
		case DirDown:
			free = dy >= 0
		case DirLeft:
			free = dx <= 0
		case DirRight:
			free = dx >= 0
		}
		return free
	})
	return free
}

// Move steps one speed unit in dir unless blocked, keeping the hull inside the
// arena walls.
func (c *Combatant) Move(a *Arena, dir Direction) bool {
	if !c.CanMove(a, dir) {
		return false
	}
	w, h := float64(a.cfg.Width), float64(a.cfg.Height)
	switch dir {
	case DirUp:
		c.pos.Y = math.Max(c.pos.Y-c.speed, c.size)
	case DirDown:
		c.pos.Y = math.Min(c.pos.Y+c.speed, h-c.size)
	case DirLeft:
		c.pos.X = math.Max(c.pos.X-c.speed, c.size)
	case DirRight:
		c.pos.X = math.Min(c.pos.X+c.speed, w-c.size)
	default:
		return false
	}
	return true
}

// ReceiveDamage lowers health by power, never below zero. Death is handled on
// the combatant's own next update.
func (c *Combatant) ReceiveDamage(power int) {
	c.hp = max(0, c.hp-power)
}

// ReloadRatio is reload progress in [0,1]; a combatant that never fired is full.
func (c *Combatant) ReloadRatio(tick int) float64 {
	if c.lastFireTick == 0 {
		return 1
	}
	return Ratio(float64(tick-c.lastFireTick), float64(c.reloadTicks))
}

// HPRatio is current health over max health.
func (c *Combatant) HPRatio() float64 {
	return Ratio(float64(c.hp), float64(c.maxHP))
}
