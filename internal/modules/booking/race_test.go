// README: Concurrency tests for seat allocation (run with -race).
package booking

import (
	"context"
	"sort"
	"sync"
	"testing"

	"railsim/internal/modules/pricing"
	"railsim/internal/types"
)

func TestConcurrentAllocate_NoLostUpdates(t *testing.T) {
	const seats = 5
	const callers = 40

	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			id := types.NewID()
			if err := store.Create(ctx, id, SeatPool{pricing.Sleeper: seats}); err != nil {
				t.Fatalf("create: %v", err)
			}

			var wg sync.WaitGroup
			results := make(chan Allocation, callers)
			errs := make(chan error, callers)
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					a, err := store.Allocate(ctx, id, pricing.Sleeper)
					if err != nil {
						errs <- err
						return
					}
					results <- a
				}()
			}
			wg.Wait()
			close(results)
			close(errs)

			for err := range errs {
				t.Fatalf("allocate: %v", err)
			}

			confirmed := 0
			var positions []int
			for a := range results {
				if a.Status == StatusConfirmed {
					confirmed++
					continue
				}
				positions = append(positions, a.WaitlistPosition)
			}
			if confirmed != seats {
				t.Fatalf("confirmed = %d, want %d", confirmed, seats)
			}
			sort.Ints(positions)
			for i, p := range positions {
				if p != i+1 {
					t.Fatalf("waitlist positions not contiguous: %v", positions)
				}
			}

			c, err := store.Counts(ctx, id)
			if err != nil {
				t.Fatalf("counts: %v", err)
			}
			if c.Seats[pricing.Sleeper] != 0 || c.Waitlist[pricing.Sleeper] != callers-seats {
				t.Fatalf("final SL = %d / %d, want 0 / %d", c.Seats[pricing.Sleeper], c.Waitlist[pricing.Sleeper], callers-seats)
			}
		})
	}
}
