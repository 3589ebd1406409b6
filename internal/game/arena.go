package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/rs/zerolog"
)

// LifecycleState is the top-level state of a match.
type LifecycleState int

const (
	StateRunning LifecycleState = iota
	StateStopped
)

func (s LifecycleState) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Lifecycle is the match state plus, once stopped, the colour painted over
// the whole arena.
type Lifecycle struct {
	State   LifecycleState
	Overlay color.RGBA
}

// Arena owns every entity of a match, the tick counter and the lifecycle.
// It is not safe for concurrent use; one frame driver owns it.
type Arena struct {
	cfg   Config
	rng   Rand
	log   zerolog.Logger
	sinks []EventSink

	entities map[EntityID]Entity
	order    []EntityID
	nextID   EntityID
	inPass   bool

	tick int
	life Lifecycle

	activePickup    EntityID
	playerID        EntityID
	livingOpponents int
	fallen          map[EntityID]*Combatant
}

// Option customises a new Arena.
type Option func(*Arena)

// WithRand sets the random source. The default is seeded from the clock.
func WithRand(r Rand) Option {
	return func(a *Arena) { a.rng = r }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(a *Arena) { a.rng = NewRand(seed) }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Arena) { a.log = l }
}

// WithSink subscribes an event sink.
func WithSink(s EventSink) Option {
	return func(a *Arena) { a.sinks = append(a.sinks, s) }
}

// NewArena creates an empty, running arena.
func NewArena(cfg Config, opts ...Option) (*Arena, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Arena{
		cfg:      cfg,
		log:      zerolog.Nop(),
		entities: make(map[EntityID]Entity),
		fallen:   make(map[EntityID]*Combatant),
	}
	for _, o := range opts {
		o(a)
	}
	if a.rng == nil {
		a.rng = NewRand(time.Now().UnixNano())
	}
	return a, nil
}

// NewMatch creates an arena populated with the player at the configured start
// aiming at pointer, and cfg.OpponentCount opponents at random positions
// aiming at the player.
func NewMatch(cfg Config, pointer *Pointer, opts ...Option) (*Arena, error) {
	a, err := NewArena(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	player := NewCombatant("P", Vec{X: cfg.PlayerX, Y: cfg.PlayerY}, cfg.PlayerStats(), PlayerColor, pointer, nil)
	pid := a.AddPlayer(player)

	size := int(cfg.TankSize)
	for i := 0; i < cfg.OpponentCount; i++ {
		pos := randomPoint(a.rng, size, cfg.Width-size, size, cfg.Height-size)
		label := fmt.Sprintf("E%d", i+1)
		policy := NewWanderPolicy(cfg.PolicyInterval, cfg.EnemyShootChance)
		a.AddOpponent(NewCombatant(label, pos, cfg.OpponentStats(), OpponentColor, Tracking(pid), policy))
	}
	a.log.Info().
		Int("opponents", a.livingOpponents).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("match created")
	return a, nil
}

// Config returns the arena configuration.
func (a *Arena) Config() Config { return a.cfg }

// Tick returns the number of completed Advance calls.
func (a *Arena) Tick() int { return a.tick }

// Lifecycle returns the match state.
func (a *Arena) Lifecycle() Lifecycle { return a.life }

// Running reports whether the match is still being played.
func (a *Arena) Running() bool { return a.life.State == StateRunning }

// LivingOpponents returns how many opponents are still in play.
func (a *Arena) LivingOpponents() int { return a.livingOpponents }

// Len returns the number of registered entities.
func (a *Arena) Len() int { return len(a.entities) }

// PickupCount is 1 while a pickup lies on the floor, else 0.
func (a *Arena) PickupCount() int {
	if a.activePickup != 0 {
		return 1
	}
	return 0
}

// InBounds reports whether p lies inside [0,W]x[0,H].
func (a *Arena) InBounds(p Vec) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= float64(a.cfg.Width) && p.Y <= float64(a.cfg.Height)
}

// AddEntity registers e under a fresh id and returns it.
func (a *Arena) AddEntity(e Entity) EntityID {
	a.nextID++
	id := a.nextID
	e.setID(id)
	a.entities[id] = e
	a.order = append(a.order, id)
	return id
}

// AddPlayer registers c as the player-controlled combatant.
func (a *Arena) AddPlayer(c *Combatant) EntityID {
	id := a.AddEntity(c)
	a.playerID = id
	a.emit(Event{Tick: a.tick, Kind: EventSpawn, Entity: id, Label: c.label, Detail: "player"})
	return id
}

// AddOpponent registers c as an opponent counted toward the win condition.
func (a *Arena) AddOpponent(c *Combatant) EntityID {
	id := a.AddEntity(c)
	a.livingOpponents++
	a.emit(Event{Tick: a.tick, Kind: EventSpawn, Entity: id, Label: c.label, Detail: "opponent"})
	return id
}

// RemoveEntity drops id from the registry. Removing an absent id is a no-op.
func (a *Arena) RemoveEntity(id EntityID) {
	if _, ok := a.entities[id]; !ok {
		return
	}
	delete(a.entities, id)
	if id == a.activePickup {
		a.activePickup = 0
	}
	if !a.inPass {
		a.compact()
	}
}

// compact drops removed ids from the iteration order.
func (a *Arena) compact() {
	kept := a.order[:0]
	for _, id := range a.order {
		if _, ok := a.entities[id]; ok {
			kept = append(kept, id)
		}
	}
	a.order = kept
}

// Entity looks up a live entity.
func (a *Arena) Entity(id EntityID) (Entity, bool) {
	e, ok := a.entities[id]
	return e, ok
}

// Combatant looks up a live combatant.
func (a *Arena) Combatant(id EntityID) (*Combatant, bool) {
	e, ok := a.entities[id]
	if !ok || e.Kind() != KindCombatant {
		return nil, false
	}
	return e.(*Combatant), true
}

// Player returns the player while it is alive in the registry.
func (a *Arena) Player() (*Combatant, bool) {
	return a.Combatant(a.playerID)
}

// Record returns a combatant whether it is alive or was destroyed. Destroyed
// combatants are kept only for reporting and never rejoin the registry.
func (a *Arena) Record(id EntityID) (*Combatant, bool) {
	if c, ok := a.Combatant(id); ok {
		return c, true
	}
	c, ok := a.fallen[id]
	return c, ok
}

// PlayerID returns the id the player was registered under.
func (a *Arena) PlayerID() EntityID { return a.playerID }

// ActivePickup returns the pickup on the floor, if any.
func (a *Arena) ActivePickup() (*Pickup, bool) {
	if a.activePickup == 0 {
		return nil, false
	}
	e, ok := a.entities[a.activePickup]
	if !ok {
		return nil, false
	}
	return e.(*Pickup), true
}

// Combatants returns live combatants in registry order.
func (a *Arena) Combatants() []*Combatant {
	var out []*Combatant
	a.each(func(e Entity) bool {
		if e.Kind() == KindCombatant {
			out = append(out, e.(*Combatant))
		}
		return true
	})
	return out
}

// each visits live entities in registry order until fn returns false.
func (a *Arena) each(fn func(Entity) bool) {
	for _, id := range a.order {
		e, ok := a.entities[id]
		if !ok {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Advance runs one tick: it may spawn a pickup, then updates every entity
// registered at the start of the pass exactly once. Entities removed during the
// pass are skipped; entities added during the pass first update next tick.
// Advance does nothing once the match has stopped.
func (a *Arena) Advance() {
	if a.life.State == StateStopped {
		return
	}
	a.tick++

	if a.activePickup == 0 && roll(a.rng, a.cfg.PickupSpawnChance) {
		a.SpawnPickup()
	}

	ids := make([]EntityID, len(a.order))
	copy(ids, a.order)
	a.inPass = true
	for _, id := range ids {
		e, ok := a.entities[id]
		if !ok {
			continue
		}
		e.UpdateTick(a)
	}
	a.inPass = false
	a.compact()
}

// SpawnPickup places a pickup of random kind at a random point. It does
// nothing while another pickup is active.
func (a *Arena) SpawnPickup() (EntityID, bool) {
	if a.activePickup != 0 {
		return 0, false
	}
	kind := PickupKind(a.rng.Intn(int(pickupKindCount)))
	pos := randomPoint(a.rng, 0, a.cfg.Width, 0, a.cfg.Height)
	id := a.AddEntity(newPickup(pos, kind, a.cfg.PickupPower, a.cfg.PickupSpeed))
	a.activePickup = id
	a.log.Debug().Int("tick", a.tick).Str("kind", kind.String()).
		Float64("x", pos.X).Float64("y", pos.Y).Msg("pickup spawned")
	a.emit(Event{Tick: a.tick, Kind: EventPickupSpawn, Entity: id, Detail: kind.String()})
	return id, true
}

// ConsumePickup applies the active pickup to by and removes it.
func (a *Arena) ConsumePickup(by *Combatant) {
	p, ok := a.ActivePickup()
	if !ok {
		return
	}
	p.OnConsume(by)
	a.RemoveEntity(p.id)
	a.log.Debug().Int("tick", a.tick).Str("by", by.label).Str("kind", p.kind.String()).Msg("pickup consumed")
	a.emit(Event{Tick: a.tick, Kind: EventPickup, Entity: by.id, Other: p.id, Label: by.label, Detail: p.kind.String()})
}

// handleDeath removes a combatant whose health reached zero and applies the
// end-of-match rules.
func (a *Arena) handleDeath(c *Combatant) {
	a.RemoveEntity(c.id)
	a.fallen[c.id] = c
	a.log.Debug().Int("tick", a.tick).Str("label", c.label).Msg("combatant destroyed")
	a.emit(Event{Tick: a.tick, Kind: EventDeath, Entity: c.id, Label: c.label})

	if c.id == a.playerID {
		a.stop(LossColor, "loss")
		return
	}
	a.livingOpponents--
	if a.livingOpponents == 0 {
		a.stop(WinColor, "win")
	}
}

// stop ends the match. Only the first call has any effect.
func (a *Arena) stop(overlay color.RGBA, result string) {
	if a.life.State == StateStopped {
		return
	}
	a.life = Lifecycle{State: StateStopped, Overlay: overlay}
	a.log.Info().Int("tick", a.tick).Str("result", result).Msg("match stopped")
	a.emit(Event{Tick: a.tick, Kind: EventStopped, Detail: result})
}

// MovePlayer applies a movement intent to the player.
func (a *Arena) MovePlayer(dir Direction) bool {
	p, ok := a.Player()
	if !ok || !a.Running() {
		return false
	}
	return p.Move(a, dir)
}

// FirePlayer applies a fire intent to the player.
func (a *Arena) FirePlayer() bool {
	p, ok := a.Player()
	if !ok || !a.Running() {
		return false
	}
	return p.Fire(a)
}

// AddSink subscribes s to every later event.
func (a *Arena) AddSink(s EventSink) {
	a.sinks = append(a.sinks, s)
}

func (a *Arena) emit(e Event) {
	for _, s := range a.sinks {
		s.OnEvent(e)
	}
}
