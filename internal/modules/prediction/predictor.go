// README: Confirmation likelihood heuristic for waitlisted passengers.
package prediction

import "fmt"

// PredictConfirmation returns 100 when nobody is waiting, otherwise
// available/waiting × 100. The score is not clamped and exceeds 100 when
// seats outnumber the waitlist.
func PredictConfirmation(available, waiting int) float64 {
	if waiting == 0 {
		return 100
	}
	return float64(available) / float64(waiting) * 100
}

// Format renders a score the way the availability view shows it: "50.00%".
func Format(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}
