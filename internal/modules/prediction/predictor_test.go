package prediction

import "testing"

func TestPredictConfirmation(t *testing.T) {
	tests := []struct {
		name      string
		available int
		waiting   int
		want      float64
	}{
		{name: "no waitlist, seats left", available: 5, waiting: 0, want: 100},
		{name: "no waitlist, no seats", available: 0, waiting: 0, want: 100},
		{name: "half", available: 5, waiting: 10, want: 50},
		{name: "unbounded above 100", available: 10, waiting: 5, want: 200},
		{name: "sold out with waitlist", available: 0, waiting: 3, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PredictConfirmation(tt.available, tt.waiting); got != tt.want {
				t.Errorf("PredictConfirmation(%d, %d) = %v, want %v", tt.available, tt.waiting, got, tt.want)
			}
		})
	}
}

func TestPredictConfirmation_ZeroWaitingAlways100(t *testing.T) {
	for available := 0; available <= 1000; available++ {
		if got := PredictConfirmation(available, 0); got != 100 {
			t.Fatalf("PredictConfirmation(%d, 0) = %v, want 100", available, got)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(PredictConfirmation(1, 3)); got != "33.33%" {
		t.Errorf("Format() = %q, want 33.33%%", got)
	}
	if got := Format(100); got != "100.00%" {
		t.Errorf("Format() = %q, want 100.00%%", got)
	}
}
