// README: Fare enquiry handler; prices a journey without touching any ledger.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/validator"
)

type FareHandler struct {
	routes    *route.Service
	pricing   *pricing.Service
	validator *validator.BookingValidator
}

func NewFareHandler(routes *route.Service, pricingSvc *pricing.Service, v *validator.BookingValidator) *FareHandler {
	return &FareHandler{routes: routes, pricing: pricingSvc, validator: v}
}

type quoteReq struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Class       string `json:"class"`
	Age         int    `json:"age"`
}

type quoteResp struct {
	Source      route.Station       `json:"source"`
	Destination route.Station       `json:"destination"`
	Class       pricing.TravelClass `json:"class"`
	DistanceKm  int                 `json:"distance_km"`
	Quote       pricing.Quote       `json:"quote"`
	Display     string              `json:"display"`
}

func (h *FareHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	class, err := pricing.ParseClass(req.Class)
	if err != nil {
		class = pricing.TravelClass(req.Class)
	}
	br := booking.Request{
		Age:         req.Age,
		Source:      h.station(req.Source),
		Destination: h.station(req.Destination),
		Class:       class,
	}
	if h.validator != nil {
		if err := h.validator.ValidateBooking(br); err != nil {
			writeBookingError(c, err)
			return
		}
	}
	if br.Source == br.Destination {
		writeBookingError(c, booking.ErrSameStation)
		return
	}

	km, err := h.routes.Distance(br.Source, br.Destination)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	q, err := h.pricing.Quote(c.Request.Context(), pricing.QuoteRequest{
		DistanceKm: float64(km),
		Class:      br.Class,
		Age:        br.Age,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, quoteResp{
		Source:      br.Source,
		Destination: br.Destination,
		Class:       br.Class,
		DistanceKm:  km,
		Quote:       q,
		Display:     q.Fare.Display(),
	})
}

// station returns the canonical name, or the raw input for the validator to reject.
func (h *FareHandler) station(name string) route.Station {
	if st, ok := h.routes.Lookup(name); ok {
		return st
	}
	return route.Station(name)
}
