package menu

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{in: "1", want: DisplayRoutes},
		{in: " 2 ", want: BookTicket},
		{in: "availability", want: SeatAvailability},
		{in: "TATKAL", want: TatkalSimulation},
		{in: "Seat Availability & Prediction", want: SeatAvailability},
		{in: "5", want: Exit},
		{in: "exit", want: Exit},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, in := range []string{"", "0", "6", "refund"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownCommand", in, err)
		}
	}
}

func TestItems(t *testing.T) {
	items := Items()
	if len(items) != 5 {
		t.Fatalf("len(Items()) = %d, want 5", len(items))
	}
	for i, it := range items {
		if it.Number != i+1 || it.Key == "" || it.Label == "" {
			t.Errorf("item %d = %+v", i, it)
		}
		c, err := Parse(it.Key)
		if err != nil || int(c) != it.Number {
			t.Errorf("key %q does not round-trip: %v, %v", it.Key, c, err)
		}
	}
}
