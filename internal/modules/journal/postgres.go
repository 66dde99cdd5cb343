// README: Journal sink backed by PostgreSQL.
package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSink struct {
	db *pgxpool.Pool
}

func NewPostgresSink(db *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Record(ctx context.Context, e Event) error {
	e = stamp(e)
	var payload []byte
	if len(e.Payload) > 0 {
		var err error
		if payload, err = json.Marshal(e.Payload); err != nil {
			return fmt.Errorf("journal: encode payload: %w", err)
		}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO booking_events (
			id, kind, session_id, booking_id, class, status, fare, occurred_at, payload
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(e.ID),
		string(e.Kind),
		nullable(string(e.SessionID)),
		nullable(string(e.BookingID)),
		nullable(e.Class),
		e.Status,
		e.Fare,
		e.OccurredAt,
		payload,
	)
	if err != nil {
		return fmt.Errorf("journal: insert event %s: %w", e.ID, err)
	}
	return nil
}

// CountBySession is read by tests only; services never query the journal.
func (s *PostgresSink) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM booking_events WHERE session_id = $1`, sessionID).Scan(&n)
	return n, err
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
