package logging

import (
	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/rs/zerolog"
)

// EventLogger writes arena events to a zerolog logger. The match result is
// logged at info, everything else at debug and shell expiries at trace.
type EventLogger struct {
	log zerolog.Logger
}

// NewEventLogger returns a sink logging through l.
func NewEventLogger(l zerolog.Logger) *EventLogger {
	return &EventLogger{log: l.With().Str("component", "arena").Logger()}
}

func (el *EventLogger) OnEvent(e game.Event) {
	var ev *zerolog.Event
	switch e.Kind {
	case game.EventStopped:
		ev = el.log.Info()
	case game.EventExpire:
		ev = el.log.Trace()
	default:
		ev = el.log.Debug()
	}
	ev = ev.Int("tick", e.Tick).Uint64("entity", uint64(e.Entity))
	if e.Other != 0 {
		ev = ev.Uint64("other", uint64(e.Other))
	}
	if e.Label != "" {
		ev = ev.Str("label", e.Label)
	}
	if e.Detail != "" {
		ev = ev.Str("detail", e.Detail)
	}
	if e.Value != 0 {
		ev = ev.Float64("value", e.Value)
	}
	ev.Msg(e.Kind.String())
}
