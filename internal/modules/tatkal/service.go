// README: Tatkal simulator; one attempt succeeds whenever a seat is available.
package tatkal

import (
	"context"
	"fmt"

	"railsim/internal/logger"
	"railsim/internal/modules/journal"
)

// Simulate is deterministic. The ledger is never touched.
func Simulate(seats int) Outcome {
	if seats > 0 {
		return OutcomeSuccess
	}
	return OutcomeFailure
}

type Service struct {
	maxSeats int
	journal  journal.Sink
	log      *logger.Logger
}

func NewService(maxSeats int, sink journal.Sink, log *logger.Logger) *Service {
	if maxSeats <= 0 {
		maxSeats = DefaultMaxSeats
	}
	if sink == nil {
		sink = journal.Discard{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{maxSeats: maxSeats, journal: sink, log: log}
}

func (s *Service) MaxSeats() int {
	return s.maxSeats
}

func (s *Service) Attempt(ctx context.Context, seats int) (Result, error) {
	if seats < 0 || seats > s.maxSeats {
		return Result{}, fmt.Errorf("%w: %d not in [0, %d]", ErrSeatsOutOfRange, seats, s.maxSeats)
	}
	out := Simulate(seats)
	res := Result{Seats: seats, Outcome: out, Message: out.Message()}

	if err := s.journal.Record(ctx, journal.Event{
		Kind:    journal.KindTatkal,
		Status:  string(out),
		Payload: map[string]any{"seats": seats},
	}); err != nil {
		s.log.Warn("journal tatkal", "err", err)
	}
	s.log.Info("tatkal attempt", "seats", seats, "outcome", out)
	return res, nil
}
