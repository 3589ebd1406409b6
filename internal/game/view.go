package game

import "image/color"

// EntityView is the read-only presentation record of one entity.
type EntityView struct {
	ID     EntityID
	Kind   Kind
	Label  string
	Pos    Vec
	Radius float64
	Color  color.RGBA

	// Combatant only.
	Player      bool
	Muzzle      Vec
	ReloadRatio float64
	HPRatio     float64

	// Pickup only.
	Pickup PickupKind
}

// View is everything a presentation collaborator needs to draw one frame.
type View struct {
	Tick            int
	Width, Height   int
	Lifecycle       Lifecycle
	LivingOpponents int
	Entities        []EntityView
}

// Player returns the player's view if the player is still in the arena.
func (v View) Player() (EntityView, bool) {
	for _, e := range v.Entities {
		if e.Player {
			return e, true
		}
	}
	return EntityView{}, false
}

// View projects the current state for rendering. It does not mutate the arena.
func (a *Arena) View() View {
	v := View{
		Tick:            a.tick,
		Width:           a.cfg.Width,
		Height:          a.cfg.Height,
		Lifecycle:       a.life,
		LivingOpponents: a.livingOpponents,
		Entities:        make([]EntityView, 0, len(a.entities)),
	}
	a.each(func(e Entity) bool {
		ev := EntityView{
			ID:     e.ID(),
			Kind:   e.Kind(),
			Pos:    e.Position(),
			Radius: e.Radius(),
		}
		switch e.Kind() {
		case KindCombatant:
			c := e.(*Combatant)
			ev.Label = c.label
			ev.Color = c.color
			ev.Player = c.id == a.playerID
			ev.Muzzle = c.AimPoint(a)
			ev.ReloadRatio = c.ReloadRatio(a.tick)
			ev.HPRatio = c.HPRatio()
		case KindProjectile:
			ev.Color = ShellColor
		case KindPickup:
			p := e.(*Pickup)
			ev.Pickup = p.kind
			ev.Color = p.kind.Color()
		}
		v.Entities = append(v.Entities, ev)
		return true
	})
	return v
}
