// README: Booking aggregate, ledger counts and request errors.
package booking

import (
	"errors"
	"fmt"
	"time"

	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/types"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusWaitlisted Status = "waitlisted"
)

var (
	ErrSameStation     = errors.New("source and destination cannot be the same")
	ErrSessionNotFound = errors.New("session not found")
	ErrBadRequest      = errors.New("bad request")
)

// RequestError is a rejected booking request. No ledger state changed.
type RequestError struct {
	Field string
	Err   error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type Request struct {
	Name        string              `json:"name" validate:"max=100"`
	Age         int                 `json:"age" validate:"min=1,max=100"`
	Source      route.Station       `json:"source" validate:"required,station"`
	Destination route.Station       `json:"destination" validate:"required,station"`
	Class       pricing.TravelClass `json:"class" validate:"required,oneof=SL 3A"`
}

type Booking struct {
	ID               types.ID            `json:"id"`
	SessionID        types.ID            `json:"session_id"`
	Name             string              `json:"name"`
	Age              int                 `json:"age"`
	Source           route.Station       `json:"source"`
	Destination      route.Station       `json:"destination"`
	Class            pricing.TravelClass `json:"class"`
	DistanceKm       int                 `json:"distance_km"`
	Fare             types.Money         `json:"fare"`
	Status           Status              `json:"status"`
	WaitlistPosition int                 `json:"waitlist_position,omitempty"`
	BookedAt         time.Time           `json:"booked_at"`
}

// StatusLabel is "CNF" for confirmed seats and "WL<n>" for waitlisted ones.
func (b *Booking) StatusLabel() string {
	if b.Status == StatusWaitlisted {
		return fmt.Sprintf("WL%d", b.WaitlistPosition)
	}
	return "CNF"
}

// SeatPool is the initial seat count per class for a new session.
type SeatPool map[pricing.TravelClass]int

func DefaultSeatPool() SeatPool {
	return SeatPool{pricing.Sleeper: 5, pricing.ThreeTierAC: 3}
}

type Counts struct {
	Seats    map[pricing.TravelClass]int `json:"seats"`
	Waitlist map[pricing.TravelClass]int `json:"waitlist"`
}

// Allocation is the outcome of the seat-or-waitlist step.
type Allocation struct {
	Status           Status
	WaitlistPosition int
}

type Session struct {
	ID        types.ID  `json:"session_id"`
	Counts    Counts    `json:"counts"`
	CreatedAt time.Time `json:"created_at"`
}

type ClassAvailability struct {
	Class               pricing.TravelClass `json:"class"`
	Label               string              `json:"label"`
	Seats               int                 `json:"seats"`
	Waitlist            int                 `json:"waitlist"`
	ConfirmationPct     float64             `json:"confirmation_pct"`
	ConfirmationDisplay string              `json:"confirmation_display"`
}
