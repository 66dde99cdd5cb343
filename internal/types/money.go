// README: Common money value object used across modules.
package types

import "fmt"

// CurrencyINR is the only currency fares are quoted in.
const CurrencyINR = "INR"

// Money keeps the unrounded amount; rounding happens only when displayed.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func INR(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyINR}
}

// Display renders the amount with two decimals, e.g. "₹ 1447.00".
func (m Money) Display() string {
	if m.Currency == CurrencyINR || m.Currency == "" {
		return fmt.Sprintf("₹ %.2f", m.Amount)
	}
	return fmt.Sprintf("%s %.2f", m.Currency, m.Amount)
}
