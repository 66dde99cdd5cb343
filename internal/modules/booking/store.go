// README: Session ledger stores (in-process map with TTL sweeper, or Redis).
package booking

import (
	"context"
	"sync"
	"time"

	"railsim/internal/modules/pricing"
	"railsim/internal/types"
)

// LedgerStore owns the per-session ledgers. Allocate must be atomic per session.
type LedgerStore interface {
	Create(ctx context.Context, id types.ID, pool SeatPool) error
	Allocate(ctx context.Context, id types.ID, class pricing.TravelClass) (Allocation, error)
	Counts(ctx context.Context, id types.ID) (Counts, error)
	Delete(ctx context.Context, id types.ID) error
}

type memorySession struct {
	ledger    *Ledger
	expiresAt time.Time
}

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[types.ID]*memorySession
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

// NewMemoryStore keeps sessions in process. A ttl of zero disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[types.ID]*memorySession),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep(ttl)
	}
	return s
}

func (s *MemoryStore) Create(_ context.Context, id types.ID, pool SeatPool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &memorySession{ledger: NewLedger(pool), expiresAt: s.deadline()}
	return nil
}

func (s *MemoryStore) Allocate(_ context.Context, id types.ID, class pricing.TravelClass) (Allocation, error) {
	sess, err := s.touch(id)
	if err != nil {
		return Allocation{}, err
	}
	return sess.ledger.Allocate(class)
}

func (s *MemoryStore) Counts(_ context.Context, id types.ID) (Counts, error) {
	sess, err := s.touch(id)
	if err != nil {
		return Counts{}, err
	}
	return sess.ledger.Counts(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		delete(s.sessions, id)
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len reports live sessions, expired ones excluded.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sess := range s.sessions {
		if !s.expired(sess) {
			n++
		}
	}
	return n
}

func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *MemoryStore) touch(id types.ID) (*memorySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	sess.expiresAt = s.deadline()
	return sess, nil
}

func (s *MemoryStore) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *MemoryStore) expired(sess *memorySession) bool {
	return !sess.expiresAt.IsZero() && s.now().After(sess.expiresAt)
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}
