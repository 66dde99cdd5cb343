package tatkal

import (
	"context"
	"errors"
	"testing"

	"railsim/internal/modules/journal"
)

type recordingSink struct {
	events []journal.Event
}

func (r *recordingSink) Record(_ context.Context, e journal.Event) error {
	r.events = append(r.events, e)
	return nil
}

func TestSimulate(t *testing.T) {
	for seats := 0; seats <= 5; seats++ {
		want := OutcomeSuccess
		if seats == 0 {
			want = OutcomeFailure
		}
		if got := Simulate(seats); got != want {
			t.Errorf("Simulate(%d) = %s, want %s", seats, got, want)
		}
	}
}

func TestOutcomeMessage(t *testing.T) {
	if got := OutcomeSuccess.Message(); got != "Tatkal Seat Booked Successfully!" {
		t.Errorf("success message = %q", got)
	}
	if got := OutcomeFailure.Message(); got != "Tatkal Booking Failed – No Seats Available" {
		t.Errorf("failure message = %q", got)
	}
}

func TestAttempt(t *testing.T) {
	tests := []struct {
		name    string
		seats   int
		want    Outcome
		wantErr error
	}{
		{name: "no seats", seats: 0, want: OutcomeFailure},
		{name: "one seat", seats: 1, want: OutcomeSuccess},
		{name: "upper bound", seats: 5, want: OutcomeSuccess},
		{name: "above bound", seats: 6, wantErr: ErrSeatsOutOfRange},
		{name: "negative", seats: -1, wantErr: ErrSeatsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			svc := NewService(5, sink, nil)
			res, err := svc.Attempt(context.Background(), tt.seats)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(sink.events) != 0 {
					t.Fatalf("rejected attempt was journaled")
				}
				return
			}
			if err != nil {
				t.Fatalf("attempt: %v", err)
			}
			if res.Outcome != tt.want || res.Message != tt.want.Message() || res.Seats != tt.seats {
				t.Fatalf("result = %+v", res)
			}
			if len(sink.events) != 1 || sink.events[0].Kind != journal.KindTatkal || sink.events[0].Status != string(tt.want) {
				t.Fatalf("events = %+v", sink.events)
			}
		})
	}
}

func TestNewService_DefaultBound(t *testing.T) {
	if got := NewService(0, nil, nil).MaxSeats(); got != DefaultMaxSeats {
		t.Fatalf("MaxSeats() = %d, want %d", got, DefaultMaxSeats)
	}
}
