package game

import "image/color"

// EntityID identifies an entity inside one Arena. Zero is never assigned.
type EntityID uint64

// Kind discriminates the closed set of simulable entities.
type Kind int

const (
	KindCombatant Kind = iota
	KindProjectile
	KindPickup
)

func (k Kind) String() string {
	switch k {
	case KindCombatant:
		return "combatant"
	case KindProjectile:
		return "projectile"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Entity is anything registered in an Arena. The set is closed to this
// package: Combatant, Projectile and Pickup.
type Entity interface {
	ID() EntityID
	Kind() Kind
	Position() Vec
	// Radius is the collision radius; zero for entities without a body.
	Radius() float64
	// Solid entities block movement.
	Solid() bool
	// UpdateTick advances the entity by one tick. It may remove itself or
	// other entities from the arena.
	UpdateTick(a *Arena)

	setID(id EntityID)
}

// body carries the identity and position shared by every entity.
type body struct {
	id  EntityID
	pos Vec
}

func (b *body) ID() EntityID      { return b.id }
func (b *body) Position() Vec     { return b.pos }
func (b *body) setID(id EntityID) { b.id = id }

// Palette of the arena.
var (
	PlayerColor   = color.RGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}
	OpponentColor = color.RGBA{R: 0xcc, G: 0x43, B: 0xae, A: 0xff}
	ShellColor    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	WinColor      = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	LossColor     = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Target resolves to a point each time it is used. Aim references never own
// what they point at: a target whose entity has left the arena resolves false.
type Target interface {
	Resolve(a *Arena) (Vec, bool)
}

// Pointer is a point written by an input collaborator (the mouse cursor) and
// read by the simulation as the player's aim.
type Pointer struct {
	X, Y float64
}

// Set moves the pointer.
func (p *Pointer) Set(x, y float64) {
	p.X, p.Y = x, y
}

func (p *Pointer) Resolve(*Arena) (Vec, bool) {
	return Vec{X: p.X, Y: p.Y}, true
}

// Fixed is a target that never moves.
type Fixed Vec

func (f Fixed) Resolve(*Arena) (Vec, bool) {
	return Vec(f), true
}

// Tracking follows another entity through the arena registry.
type Tracking EntityID

func (t Tracking) Resolve(a *Arena) (Vec, bool) {
	e, ok := a.Entity(EntityID(t))
	if !ok {
		return Vec{}, false
	}
	return e.Position(), true
}
