// README: Tatkal outcome and its user-facing messages.
package tatkal

import "errors"

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// DefaultMaxSeats is the slider's upper bound.
const DefaultMaxSeats = 5

var ErrSeatsOutOfRange = errors.New("tatkal seats out of range")

func (o Outcome) Message() string {
	if o == OutcomeSuccess {
		return "Tatkal Seat Booked Successfully!"
	}
	return "Tatkal Booking Failed – No Seats Available"
}

type Request struct {
	Seats int `json:"seats" validate:"min=0"`
}

type Result struct {
	Seats   int     `json:"seats"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}
