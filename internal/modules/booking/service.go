// README: Booking service opens sessions, books tickets and reports availability.
package booking

import (
	"context"
	"errors"
	"time"

	"railsim/internal/logger"
	"railsim/internal/modules/journal"
	"railsim/internal/modules/prediction"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/types"
)

type Pricing interface {
	Estimate(ctx context.Context, distanceKm float64, class pricing.TravelClass, age int) (types.Money, error)
}

type Routes interface {
	Distance(from, to route.Station) (int, error)
	Lookup(name string) (route.Station, bool)
}

// Validator checks field-level rules before any ledger work.
type Validator interface {
	ValidateBooking(req Request) error
}

type ServiceDeps struct {
	Store     LedgerStore
	Routes    Routes
	Pricing   Pricing
	Validator Validator
	Journal   journal.Sink
	SeatPool  SeatPool
	Logger    *logger.Logger
}

type Service struct {
	store     LedgerStore
	routes    Routes
	pricing   Pricing
	validator Validator
	journal   journal.Sink
	pool      SeatPool
	log       *logger.Logger
	now       func() time.Time
}

func NewService(deps ServiceDeps) *Service {
	s := &Service{
		store:     deps.Store,
		routes:    deps.Routes,
		pricing:   deps.Pricing,
		validator: deps.Validator,
		journal:   deps.Journal,
		pool:      deps.SeatPool,
		log:       deps.Logger,
		now:       time.Now,
	}
	if s.store == nil {
		s.store = NewMemoryStore(0)
	}
	if s.routes == nil {
		s.routes = route.NewService(nil)
	}
	if s.pricing == nil {
		s.pricing = pricing.NewService()
	}
	if s.journal == nil {
		s.journal = journal.Discard{}
	}
	if s.pool == nil {
		s.pool = DefaultSeatPool()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	return s
}

func (s *Service) OpenSession(ctx context.Context) (Session, error) {
	id := types.NewID()
	if err := s.store.Create(ctx, id, s.pool); err != nil {
		return Session{}, err
	}
	counts, err := s.store.Counts(ctx, id)
	if err != nil {
		return Session{}, err
	}
	s.log.Info("session opened", "session_id", id)
	return Session{ID: id, Counts: counts, CreatedAt: s.now().UTC()}, nil
}

// CloseSession is the Exit command: the ledger is discarded.
func (s *Service) CloseSession(ctx context.Context, id types.ID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("session closed", "session_id", id)
	return nil
}

// Book validates the request, prices it, then takes a seat or a waitlist slot.
// A rejected request leaves the ledger untouched.
func (s *Service) Book(ctx context.Context, sessionID types.ID, req Request) (*Booking, error) {
	req = s.normalize(req)
	if s.validator != nil {
		if err := s.validator.ValidateBooking(req); err != nil {
			return nil, err
		}
	}

	km, err := s.routes.Distance(req.Source, req.Destination)
	if err != nil {
		return nil, &RequestError{Field: "source", Err: err}
	}
	if req.Source == req.Destination {
		return nil, &RequestError{Field: "destination", Err: ErrSameStation}
	}
	fare, err := s.pricing.Estimate(ctx, float64(km), req.Class, req.Age)
	if err != nil {
		return nil, &RequestError{Field: "class", Err: err}
	}

	alloc, err := s.store.Allocate(ctx, sessionID, req.Class)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownClass) {
			return nil, &RequestError{Field: "class", Err: err}
		}
		return nil, err
	}

	b := &Booking{
		ID:               types.NewID(),
		SessionID:        sessionID,
		Name:             req.Name,
		Age:              req.Age,
		Source:           req.Source,
		Destination:      req.Destination,
		Class:            req.Class,
		DistanceKm:       km,
		Fare:             fare,
		Status:           alloc.Status,
		WaitlistPosition: alloc.WaitlistPosition,
		BookedAt:         s.now().UTC(),
	}

	if err := s.journal.Record(ctx, journal.Event{
		Kind:       journal.KindBooking,
		SessionID:  sessionID,
		BookingID:  b.ID,
		Class:      string(b.Class),
		Status:     b.StatusLabel(),
		Fare:       b.Fare.Amount,
		OccurredAt: b.BookedAt,
		Payload: map[string]any{
			"source":      string(b.Source),
			"destination": string(b.Destination),
			"distance_km": b.DistanceKm,
			"age":         b.Age,
		},
	}); err != nil {
		// Seat stays allocated; journal failures are only logged.
		s.log.Warn("journal booking", "booking_id", b.ID, "err", err)
	}

	s.log.Info("ticket booked",
		"session_id", sessionID,
		"booking_id", b.ID,
		"class", b.Class,
		"status", b.StatusLabel(),
		"fare", b.Fare.Amount,
	)
	return b, nil
}

// Availability reports remaining seats, waitlist length and confirmation odds per class.
func (s *Service) Availability(ctx context.Context, sessionID types.ID) ([]ClassAvailability, error) {
	counts, err := s.store.Counts(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]ClassAvailability, 0, len(pricing.Classes()))
	for _, c := range pricing.Classes() {
		pct := prediction.PredictConfirmation(counts.Seats[c], counts.Waitlist[c])
		out = append(out, ClassAvailability{
			Class:               c,
			Label:               c.Label(),
			Seats:               counts.Seats[c],
			Waitlist:            counts.Waitlist[c],
			ConfirmationPct:     pct,
			ConfirmationDisplay: prediction.Format(pct),
		})
	}
	return out, nil
}

func (s *Service) Counts(ctx context.Context, sessionID types.ID) (Counts, error) {
	return s.store.Counts(ctx, sessionID)
}

func (s *Service) normalize(req Request) Request {
	if st, ok := s.routes.Lookup(string(req.Source)); ok {
		req.Source = st
	}
	if st, ok := s.routes.Lookup(string(req.Destination)); ok {
		req.Destination = st
	}
	if c, err := pricing.ParseClass(string(req.Class)); err == nil {
		req.Class = c
	}
	return req
}
