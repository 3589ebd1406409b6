package game

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventSpawn       EventKind = iota // combatant entered the arena
	EventFire                         // Entity fired projectile Other
	EventHit                          // Entity took Value damage from Other's shell
	EventExpire                       // projectile Entity left the arena
	EventPickupSpawn                  // pickup Entity appeared; Detail is its kind
	EventPickup                       // combatant Entity consumed pickup Other
	EventDeath                        // combatant Entity was destroyed
	EventStopped                      // the match ended; Detail is "win" or "loss"
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventFire:
		return "fire"
	case EventHit:
		return "hit"
	case EventExpire:
		return "expire"
	case EventPickupSpawn:
		return "pickup_spawn"
	case EventPickup:
		return "pickup"
	case EventDeath:
		return "death"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Event is a single simulation occurrence delivered to every EventSink.
type Event struct {
	Tick   int
	Kind   EventKind
	Entity EntityID
	Other  EntityID
	Label  string // label of Entity when it is a combatant
	Detail string
	Value  float64
}

// EventSink receives events synchronously, inside the tick that produced them.
// Sinks must not mutate the arena.
type EventSink interface {
	OnEvent(e Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(e Event) { f(e) }
