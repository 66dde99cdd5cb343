// README: Journal events emitted by booking and tatkal flows.
package journal

import (
	"context"
	"time"

	"railsim/internal/types"
)

type Kind string

const (
	KindBooking Kind = "booking"
	KindTatkal  Kind = "tatkal"
)

// Event is append-only. Nothing in the service reads events back.
type Event struct {
	ID         types.ID       `json:"id"`
	Kind       Kind           `json:"kind"`
	SessionID  types.ID       `json:"session_id,omitempty"`
	BookingID  types.ID       `json:"booking_id,omitempty"`
	Class      string         `json:"class,omitempty"`
	Status     string         `json:"status"`
	Fare       float64        `json:"fare,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

type Sink interface {
	Record(ctx context.Context, e Event) error
}

// stamp fills the id and timestamp when the caller left them empty.
func stamp(e Event) Event {
	if e.ID == "" {
		e.ID = types.NewID()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	return e
}
