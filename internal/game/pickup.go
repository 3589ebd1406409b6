package game

import (
	"image/color"
	"math"
)

// pickupRadius is half the side of the drawn pickup square.
const pickupRadius = 5.0

// PickupKind is the effect a pickup grants.
type PickupKind int

const (
	PickupPower PickupKind = iota
	PickupSpeed
	PickupHeal

	pickupKindCount
)

func (k PickupKind) String() string {
	switch k {
	case PickupPower:
		return "power"
	case PickupSpeed:
		return "speed"
	case PickupHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// Color is the presentation colour of the pickup kind.
func (k PickupKind) Color() color.RGBA {
	switch k {
	case PickupPower:
		return color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	case PickupSpeed:
		return color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	default:
		return color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	}
}

// Pickup is a one-shot stat bonus lying on the arena floor.
type Pickup struct {
	body
	kind       PickupKind
	powerBonus int
	speedBonus float64
}

func newPickup(pos Vec, kind PickupKind, powerBonus int, speedBonus float64) *Pickup {
	return &Pickup{
		body:       body{pos: pos},
		kind:       kind,
		powerBonus: powerBonus,
		speedBonus: speedBonus,
	}
}

func (p *Pickup) Kind() Kind             { return KindPickup }
func (p *Pickup) Radius() float64        { return pickupRadius }
func (p *Pickup) Solid() bool            { return false }
func (p *Pickup) PickupKind() PickupKind { return p.kind }

// UpdateTick does nothing: collection is detected by combatants.
func (p *Pickup) UpdateTick(*Arena) {}

// OnConsume applies the bonus to picker. Boosts clamp at the picker's caps and
// never expire.
func (p *Pickup) OnConsume(picker *Combatant) {
	switch p.kind {
	case PickupPower:
		picker.power = min(picker.power+p.powerBonus, picker.maxPower)
	case PickupSpeed:
		picker.speed = math.Min(picker.speed+p.speedBonus, picker.maxSpeed)
	case PickupHeal:
		picker.hp = picker.maxHP
	}
}
