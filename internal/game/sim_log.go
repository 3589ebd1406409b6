package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event of a match.
type SimLogEntry struct {
	Tick     int
	Entity   string  // label e.g. "P", "E2", or "--" for arena events
	Category string  // combat, pickup, state, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] E1   combat    hit              P → E1 (10)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Entity, e.Category, e.Key, e.Value)
}

// SimLog collects structured events of a match. Unlike FeedLog (UI ring
// buffer), SimLog is unbounded and machine-readable. It is an EventSink.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position entries
// recorded through AddVerbose are kept as well.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, entity, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Entity:   entity,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, entity, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, entity, category, key, value, numVal)
}

// OnEvent translates an arena event into a log entry.
func (sl *SimLog) OnEvent(e Event) {
	label := e.Label
	if label == "" {
		label = "--"
	}
	switch e.Kind {
	case EventSpawn:
		sl.Add(e.Tick, label, "state", "spawn", e.Detail, 0)
	case EventFire:
		sl.Add(e.Tick, label, "combat", "fire", fmt.Sprintf("power %.0f", e.Value), e.Value)
	case EventHit:
		sl.Add(e.Tick, label, "combat", "hit", fmt.Sprintf("%s → %s (%.0f)", e.Detail, e.Label, e.Value), e.Value)
	case EventExpire:
		sl.AddVerbose(e.Tick, label, "combat", "expire", "left arena", 0)
	case EventPickupSpawn:
		sl.Add(e.Tick, label, "pickup", "spawn", e.Detail, 0)
	case EventPickup:
		sl.Add(e.Tick, label, "pickup", "consume", e.Detail, 0)
	case EventDeath:
		sl.Add(e.Tick, label, "state", "death", "destroyed", 0)
	case EventStopped:
		sl.Add(e.Tick, label, "state", "stopped", e.Detail, 0)
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterEntity returns entries for a specific entity label.
func (sl *SimLog) FilterEntity(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Entity == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// FirstTick returns the tick of the first entry matching category, key and
// value substring, or -1.
func (sl *SimLog) FirstTick(category, key, valueSubstr string) int {
	for _, e := range sl.entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return e.Tick
		}
	}
	return -1
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	return sl.FirstTick(category, key, valueSubstr) >= 0
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable digest of a match.
func (sl *SimLog) Summary(a *Arena) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", a.Tick())
	fmt.Fprintf(&sb, "State: %s  opponents left: %d\n", a.Lifecycle().State, a.LivingOpponents())
	if last, ok := sl.LastOf("state", "stopped"); ok {
		fmt.Fprintf(&sb, "Result: %s at T=%03d\n", last.Value, last.Tick)
	}
	fmt.Fprintf(&sb, "Shots: %d  hits: %d  pickups: %d/%d  deaths: %d\n",
		sl.CountCategory("combat", "fire"),
		sl.CountCategory("combat", "hit"),
		sl.CountCategory("pickup", "consume"),
		sl.CountCategory("pickup", "spawn"),
		sl.CountCategory("state", "death"))
	for _, c := range a.Combatants() {
		fmt.Fprintf(&sb, "%-3s hp=%3d/%d power=%d speed=%.0f shots=%d hits=%d\n",
			c.label, c.hp, c.maxHP, c.power, c.speed, c.shots, c.hits)
	}
	return sb.String()
}
