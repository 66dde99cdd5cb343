// README: Travel classes and fare constants.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"railsim/internal/types"
)

type TravelClass string

const (
	Sleeper     TravelClass = "SL"
	ThreeTierAC TravelClass = "3A"
)

const (
	// RatePerKm is the base rupee rate before any multiplier.
	RatePerKm = 0.5
	// SeniorAge is the first age that gets the senior discount.
	SeniorAge = 60
	// SeniorFactor is applied after the class multiplier.
	SeniorFactor = 0.7
)

var ErrUnknownClass = errors.New("unknown travel class")

func Classes() []TravelClass {
	return []TravelClass{Sleeper, ThreeTierAC}
}

func ParseClass(s string) (TravelClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SL", "SLEEPER":
		return Sleeper, nil
	case "3A", "THREETIERAC", "AC3":
		return ThreeTierAC, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

func (c TravelClass) Valid() bool {
	return c == Sleeper || c == ThreeTierAC
}

func (c TravelClass) Multiplier() float64 {
	if c == ThreeTierAC {
		return 2
	}
	return 1
}

func (c TravelClass) Label() string {
	switch c {
	case Sleeper:
		return "Sleeper (SL)"
	case ThreeTierAC:
		return "AC 3 Tier (3A)"
	}
	return string(c)
}

type QuoteRequest struct {
	DistanceKm float64
	Class      TravelClass
	Age        int
}

type Quote struct {
	Fare      types.Money        `json:"fare"`
	Breakdown map[string]float64 `json:"breakdown"`
}
