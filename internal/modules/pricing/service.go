// README: Pricing service computes fares from distance, class and passenger age.
package pricing

import (
	"context"

	"railsim/internal/types"
)

// ComputeFare returns distanceKm × RatePerKm, doubled for 3A, then reduced by
// SeniorFactor for passengers aged SeniorAge or more. The result is not rounded.
func ComputeFare(distanceKm float64, class TravelClass, age int) float64 {
	fare := distanceKm * RatePerKm
	if class == ThreeTierAC {
		fare *= 2
	}
	if age >= SeniorAge {
		fare *= SeniorFactor
	}
	return fare
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Estimate(ctx context.Context, distanceKm float64, class TravelClass, age int) (types.Money, error) {
	if !class.Valid() {
		return types.Money{}, ErrUnknownClass
	}
	return types.INR(ComputeFare(distanceKm, class, age)), nil
}

// Quote is Estimate plus the intermediate amounts, for fare enquiries.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	fare, err := s.Estimate(ctx, req.DistanceKm, req.Class, req.Age)
	if err != nil {
		return Quote{}, err
	}
	base := req.DistanceKm * RatePerKm
	classed := base * req.Class.Multiplier()
	breakdown := map[string]float64{
		"base":             base,
		"class_multiplier": req.Class.Multiplier(),
		"class_fare":       classed,
		"senior_discount":  0,
	}
	if req.Age >= SeniorAge {
		breakdown["senior_discount"] = classed - fare.Amount
	}
	return Quote{Fare: fare, Breakdown: breakdown}, nil
}
