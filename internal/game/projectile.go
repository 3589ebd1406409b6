package game

// projectileRadius is the drawn size of a shell. Shells have no collision body.
const projectileRadius = 5.0

// Projectile flies in a straight line fixed at spawn time. It does not follow
// its original target.
type Projectile struct {
	body
	origin   Vec
	target   Vec
	dir      Vec
	aimed    bool // false when origin and target coincide
	speed    float64
	traveled float64
	power    int
	owner    EntityID
}

func newProjectile(origin, target Vec, speed float64, power int, owner EntityID) *Projectile {
	dir, ok := Unit(target.Sub(origin))
	return &Projectile{
		body:   body{pos: origin},
		origin: origin,
		target: target,
		dir:    dir,
		aimed:  ok,
		speed:  speed,
		power:  power,
		owner:  owner,
	}
}

func (p *Projectile) Kind() Kind      { return KindProjectile }
func (p *Projectile) Radius() float64 { return projectileRadius }
func (p *Projectile) Solid() bool     { return false }
func (p *Projectile) Owner() EntityID { return p.owner }
func (p *Projectile) Direction() Vec  { return p.dir }

// UpdateTick moves the shell along its line, drops it once it leaves the
// arena, and otherwise strikes the first combatant it overlaps.
func (p *Projectile) UpdateTick(a *Arena) {
	if !p.aimed {
		a.RemoveEntity(p.id)
		return
	}
	p.traveled += p.speed
	p.pos = p.origin.Add(p.dir.Scale(p.traveled))

	if !a.InBounds(p.pos) {
		a.RemoveEntity(p.id)
		a.emit(Event{Tick: a.Tick(), Kind: EventExpire, Entity: p.id, Other: p.owner})
		return
	}

	var victim *Combatant
	a.each(func(e Entity) bool {
		if e.Kind() != KindCombatant || e.ID() == p.owner {
			return true
		}
		if Distance(p.pos, e.Position()) <= e.Radius() {
			victim = e.(*Combatant)
			return false
		}
		return true
	})
	if victim == nil {
		return
	}

	victim.ReceiveDamage(p.power)
	label := ""
	if shooter, ok := a.Record(p.owner); ok {
		shooter.hits++
		label = shooter.label
	}
	a.RemoveEntity(p.id)
	a.emit(Event{
		Tick:   a.Tick(),
		Kind:   EventHit,
		Entity: victim.id,
		Other:  p.owner,
		Label:  victim.label,
		Detail: label,
		Value:  float64(p.power),
	})
}
