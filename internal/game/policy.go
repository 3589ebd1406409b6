package game

import "math"

// WanderPolicy is the opponent brain. Every interval ticks it heads for the
// active pickup, or else for a random waypoint, and may take a shot.
//
// Movement is axis-by-axis: X closes first and Y only once X is aligned. When
// a pickup disappears the policy keeps heading to where it lay and only picks
// a fresh waypoint after arriving there.
type WanderPolicy struct {
	interval    int
	shootChance float64

	lastUpdate  int
	waypoint    Vec
	hasWaypoint bool
}

// NewWanderPolicy returns a policy deciding every interval ticks and firing
// with shootChance per decision.
func NewWanderPolicy(interval int, shootChance float64) *WanderPolicy {
	return &WanderPolicy{interval: interval, shootChance: shootChance}
}

// Waypoint returns the current movement target.
func (p *WanderPolicy) Waypoint() (Vec, bool) { return p.waypoint, p.hasWaypoint }

func (p *WanderPolicy) Decide(c *Combatant, a *Arena) {
	tick := a.Tick()
	if p.lastUpdate+p.interval > tick {
		return
	}

	if pk, ok := a.ActivePickup(); ok {
		p.waypoint, p.hasWaypoint = pk.Position(), true
	} else if !p.hasWaypoint || c.pos == p.waypoint {
		p.waypoint = randomPoint(a.rng, 0, a.cfg.Width, 0, a.cfg.Height)
		p.hasWaypoint = true
	}

	c.pos = stepToward(c.pos, p.waypoint, c.speed)

	if roll(a.rng, p.shootChance) {
		c.Fire(a)
	}
	p.lastUpdate = tick
}

// HunterPolicy is an autopilot for the player: it aims at the nearest enemy,
// collects pickups, otherwise closes to within standoff range, and fires as
// soon as the weapon has reloaded. It moves through Combatant.Move so walls
// and other hulls still block it.
type HunterPolicy struct {
	Standoff float64
}

// NewHunterPolicy returns an autopilot that holds at standoff distance.
func NewHunterPolicy(standoff float64) *HunterPolicy {
	return &HunterPolicy{Standoff: standoff}
}

func (h *HunterPolicy) Decide(c *Combatant, a *Arena) {
	enemy, ok := nearestEnemy(c, a)
	if !ok {
		return
	}
	c.aim = Tracking(enemy.id)

	goal, hold := enemy.pos, h.Standoff
	if pk, ok := a.ActivePickup(); ok {
		goal, hold = pk.Position(), 0
	}
	if Distance(c.pos, goal) > hold {
		h.approach(c, a, goal)
	}

	if c.Ready(a.Tick()) {
		c.Fire(a)
	}
}

// approach tries the axis with the larger gap first and falls back to the
// other one when blocked.
func (h *HunterPolicy) approach(c *Combatant, a *Arena, goal Vec) {
	dx, dy := goal.X-c.pos.X, goal.Y-c.pos.Y
	horiz, vert := DirRight, DirDown
	if dx < 0 {
		horiz = DirLeft
	}
	if dy < 0 {
		vert = DirUp
	}
	first, second := horiz, vert
	if math.Abs(dy) > math.Abs(dx) {
		first, second = vert, horiz
	}
	if !c.Move(a, first) {
		c.Move(a, second)
	}
}

// nearestEnemy finds the closest combatant on the other side: opponents for
// the player, the player for everybody else.
func nearestEnemy(c *Combatant, a *Arena) (*Combatant, bool) {
	if c.id != a.playerID {
		return a.Player()
	}
	var best *Combatant
	bestDist := math.Inf(1)
	for _, o := range a.Combatants() {
		if o.id == c.id {
			continue
		}
		if d := Distance(c.pos, o.pos); d < bestDist {
			best, bestDist = o, d
		}
	}
	return best, best != nil
}
