// README: API gateway; wires gin middleware and delegates to module services.
package http

import (
	"railsim/internal/logger"
	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/modules/tatkal"
	"railsim/internal/validator"
)

type ServerDeps struct {
	Routes      *route.Service
	Pricing     *pricing.Service
	Bookings    *booking.Service
	Tatkal      *tatkal.Service
	Validator   *validator.BookingValidator
	Logger      *logger.Logger
	CORSOrigins []string
}

type Server struct {
	routes      *route.Service
	pricing     *pricing.Service
	bookings    *booking.Service
	tatkal      *tatkal.Service
	validator   *validator.BookingValidator
	log         *logger.Logger
	corsOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		routes:      deps.Routes,
		pricing:     deps.Pricing,
		bookings:    deps.Bookings,
		tatkal:      deps.Tatkal,
		validator:   deps.Validator,
		log:         log,
		corsOrigins: deps.CORSOrigins,
	}
}
