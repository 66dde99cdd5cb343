package pricing

import (
	"context"
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestComputeFare(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		class    TravelClass
		age      int
		wantFare float64
	}{
		{name: "Sleeper adult", distance: 1447, class: Sleeper, age: 25, wantFare: 723.5},
		{name: "3A adult (Mumbai-Delhi)", distance: 1447, class: ThreeTierAC, age: 25, wantFare: 1447},
		{name: "Sleeper senior", distance: 1000, class: Sleeper, age: 60, wantFare: 350},
		{name: "3A senior", distance: 1000, class: ThreeTierAC, age: 75, wantFare: 700},
		{name: "age 59 is not senior", distance: 1000, class: Sleeper, age: 59, wantFare: 500},
		{name: "zero distance", distance: 0, class: ThreeTierAC, age: 80, wantFare: 0},
		{name: "fractional distance", distance: 1.5, class: Sleeper, age: 30, wantFare: 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFare(tt.distance, tt.class, tt.age)
			if math.Abs(got-tt.wantFare) > eps {
				t.Errorf("ComputeFare() = %v, want %v", got, tt.wantFare)
			}
		})
	}
}

// Sleeper, age < 60: fare is exactly half the distance.
func TestComputeFare_SleeperIsHalfDistance(t *testing.T) {
	for d := 0; d <= 3000; d += 37 {
		for _, age := range []int{1, 18, 45, 59} {
			got := ComputeFare(float64(d), Sleeper, age)
			if want := 0.5 * float64(d); math.Abs(got-want) > eps {
				t.Fatalf("ComputeFare(%d, SL, %d) = %v, want %v", d, age, got, want)
			}
		}
	}
}

// 3A, age >= 60: fare is d × 0.5 × 2 × 0.7.
func TestComputeFare_SeniorThreeTier(t *testing.T) {
	for d := 0; d <= 3000; d += 41 {
		for _, age := range []int{60, 61, 85, 100} {
			got := ComputeFare(float64(d), ThreeTierAC, age)
			if want := 0.5 * float64(d) * 2 * 0.7; math.Abs(got-want) > eps {
				t.Fatalf("ComputeFare(%d, 3A, %d) = %v, want %v", d, age, got, want)
			}
		}
	}
}

func TestService_Estimate(t *testing.T) {
	s := NewService()

	got, err := s.Estimate(context.Background(), 1447, ThreeTierAC, 25)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if got.Amount != 1447 || got.Currency != "INR" {
		t.Errorf("Estimate() = %+v, want 1447 INR", got)
	}

	if _, err := s.Estimate(context.Background(), 10, TravelClass("1A"), 25); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, got %v", err)
	}
}

func TestService_QuoteBreakdown(t *testing.T) {
	q, err := NewService().Quote(context.Background(), QuoteRequest{DistanceKm: 1000, Class: ThreeTierAC, Age: 65})
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if math.Abs(q.Fare.Amount-700) > eps {
		t.Errorf("fare = %v, want 700", q.Fare.Amount)
	}
	if q.Breakdown["base"] != 500 || q.Breakdown["class_fare"] != 1000 {
		t.Errorf("unexpected breakdown: %v", q.Breakdown)
	}
	if math.Abs(q.Breakdown["senior_discount"]-300) > eps {
		t.Errorf("senior_discount = %v, want 300", q.Breakdown["senior_discount"])
	}
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    TravelClass
		wantErr bool
	}{
		{in: "SL", want: Sleeper},
		{in: " sl ", want: Sleeper},
		{in: "3A", want: ThreeTierAC},
		{in: "3a", want: ThreeTierAC},
		{in: "2A", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClass(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClass(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseClass(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
