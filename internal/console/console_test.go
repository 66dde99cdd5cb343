package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
)

func run(t *testing.T, deps Deps, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := New(strings.NewReader(input), &out, deps).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestRun_DisplayRoutesThenExit(t *testing.T) {
	out := run(t, Deps{}, "1\n5\n")
	for _, want := range []string{"Mumbai", "Kolkata", "2180", "Thank you for using Smart IRCTC Simulator 🇮🇳"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_BookTicketFlow(t *testing.T) {
	input := strings.Join([]string{
		"book", "Asha", "30", "Mumbai", "Delhi", "SL",
		"exit",
	}, "\n") + "\n"
	out := run(t, Deps{}, input)
	for _, want := range []string{"✅ Seat Confirmed!", "Route: Mumbai ➜ Delhi", "Distance: 1447 km", "Fare: ₹ 723.50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_WaitlistAfterPoolExhausted(t *testing.T) {
	routes := route.NewService(nil)
	deps := Deps{
		Routes: routes,
		Bookings: booking.NewService(booking.ServiceDeps{
			Routes:   routes,
			SeatPool: booking.SeatPool{pricing.Sleeper: 0, pricing.ThreeTierAC: 0},
		}),
	}
	booking3A := "2\nRavi\n65\nChennai\nKolkata\n3A\n"
	out := run(t, deps, booking3A+booking3A+"3\n5\n")
	if !strings.Contains(out, "⏳ Waitlisted: WL1") || !strings.Contains(out, "⏳ Waitlisted: WL2") {
		t.Fatalf("expected WL1 then WL2:\n%s", out)
	}
	if !strings.Contains(out, "Fare: ₹ 1400.00") {
		t.Errorf("senior 3A fare missing:\n%s", out)
	}
	if !strings.Contains(out, "Confirmation %: 0.00%") {
		t.Errorf("availability missing 0.00%%:\n%s", out)
	}
}

func TestRun_SameStationRejected(t *testing.T) {
	out := run(t, Deps{}, "2\nA\n40\nDelhi\nDelhi\nSL\n3\n5\n")
	if !strings.Contains(out, "❌ Source and destination cannot be the same.") {
		t.Fatalf("missing same-station message:\n%s", out)
	}
	if !strings.Contains(out, "Sleeper (SL) Seats: 5") {
		t.Fatalf("ledger changed after rejection:\n%s", out)
	}
}

func TestRun_Tatkal(t *testing.T) {
	out := run(t, Deps{}, "4\n2\n4\n0\n4\n9\n5\n")
	for _, want := range []string{
		"🎉 Tatkal Seat Booked Successfully!",
		"❌ Tatkal Booking Failed – No Seats Available",
		"❌ Seats must be between 0 and 5.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_InvalidChoiceAndEOF(t *testing.T) {
	out := run(t, Deps{}, "9\n")
	if !strings.Contains(out, "❌ Invalid choice.") {
		t.Errorf("missing invalid choice message:\n%s", out)
	}
	if !strings.Contains(out, "Thank you for using Smart IRCTC Simulator") {
		t.Errorf("EOF did not exit cleanly:\n%s", out)
	}
}
