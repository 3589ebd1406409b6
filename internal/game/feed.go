package game

import "fmt"

const feedMaxEntries = 60

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Label   string // e.g. "P", "E3"
	Player  bool
	Message string
}

// FeedLog is a ring buffer of recent match events shown beside the arena.
type FeedLog struct {
	entries  []FeedEntry
	head     int
	count    int
	playerID EntityID
}

// NewFeedLog creates a feed with a fixed capacity. Events about playerID are
// flagged so presentations can tint them.
func NewFeedLog(playerID EntityID) *FeedLog {
	return &FeedLog{
		entries:  make([]FeedEntry, feedMaxEntries),
		playerID: playerID,
	}
}

// SetPlayer changes which entity is flagged as the player.
func (fl *FeedLog) SetPlayer(id EntityID) { fl.playerID = id }

// Add appends an entry to the feed.
func (fl *FeedLog) Add(tick int, label string, player bool, msg string) {
	fl.entries[fl.head] = FeedEntry{
		Tick:    tick,
		Label:   label,
		Player:  player,
		Message: msg,
	}
	fl.head = (fl.head + 1) % feedMaxEntries
	if fl.count < feedMaxEntries {
		fl.count++
	}
}

// OnEvent keeps the events worth showing to a player. Shots and expiries are
// too frequent to be useful.
func (fl *FeedLog) OnEvent(e Event) {
	player := e.Entity == fl.playerID
	switch e.Kind {
	case EventHit:
		fl.Add(e.Tick, e.Label, player, fmt.Sprintf("hit by %s for %.0f", e.Detail, e.Value))
	case EventPickupSpawn:
		fl.Add(e.Tick, "--", false, e.Detail+" pickup appeared")
	case EventPickup:
		fl.Add(e.Tick, e.Label, player, "took "+e.Detail)
	case EventDeath:
		fl.Add(e.Tick, e.Label, player, "destroyed")
	case EventStopped:
		fl.Add(e.Tick, "--", false, "match over: "+e.Detail)
	}
}

// Recent returns entries in chronological order (oldest first).
func (fl *FeedLog) Recent() []FeedEntry {
	result := make([]FeedEntry, fl.count)
	for i := 0; i < fl.count; i++ {
		idx := (fl.head - fl.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = fl.entries[idx]
	}
	return result
}
