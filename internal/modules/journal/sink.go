// README: Fan-out and log-backed journal sinks.
package journal

import (
	"context"
	"errors"

	"railsim/internal/logger"
)

type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Record(ctx context.Context, e Event) error {
	e = stamp(e)
	s.log.InfoContext(ctx, "journal event",
		"event_id", e.ID,
		"kind", e.Kind,
		"session_id", e.SessionID,
		"booking_id", e.BookingID,
		"class", e.Class,
		"status", e.Status,
		"fare", e.Fare,
	)
	return nil
}

// Multi records to every sink even when an earlier one fails.
type Multi []Sink

func (m Multi) Record(ctx context.Context, e Event) error {
	e = stamp(e)
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Record(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Discard struct{}

func (Discard) Record(context.Context, Event) error { return nil }
