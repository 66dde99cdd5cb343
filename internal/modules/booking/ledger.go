// README: In-process ledger holding seat and waitlist counters for one session.
package booking

import (
	"sync"

	"railsim/internal/modules/pricing"
)

// Ledger serialises allocations so the check-then-mutate step cannot lose updates.
type Ledger struct {
	mu       sync.Mutex
	seats    map[pricing.TravelClass]int
	waitlist map[pricing.TravelClass]int
}

func NewLedger(pool SeatPool) *Ledger {
	l := &Ledger{
		seats:    make(map[pricing.TravelClass]int, len(pool)),
		waitlist: make(map[pricing.TravelClass]int, len(pool)),
	}
	for _, c := range pricing.Classes() {
		l.seats[c] = 0
		l.waitlist[c] = 0
	}
	for c, n := range pool {
		if n < 0 {
			n = 0
		}
		l.seats[c] = n
	}
	return l
}

// Allocate takes a seat when one is free, otherwise appends to the waitlist.
// Exactly one counter changes per call.
func (l *Ledger) Allocate(class pricing.TravelClass) (Allocation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seats, ok := l.seats[class]
	if !ok {
		return Allocation{}, pricing.ErrUnknownClass
	}
	if seats > 0 {
		l.seats[class] = seats - 1
		return Allocation{Status: StatusConfirmed}, nil
	}
	l.waitlist[class]++
	return Allocation{Status: StatusWaitlisted, WaitlistPosition: l.waitlist[class]}, nil
}

func (l *Ledger) Counts() Counts {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := Counts{
		Seats:    make(map[pricing.TravelClass]int, len(l.seats)),
		Waitlist: make(map[pricing.TravelClass]int, len(l.waitlist)),
	}
	for k, v := range l.seats {
		c.Seats[k] = v
	}
	for k, v := range l.waitlist {
		c.Waitlist[k] = v
	}
	return c
}
