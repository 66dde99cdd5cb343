// README: Session handlers for open/exit, booking and availability.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
)

type SessionHandler struct {
	bookings *booking.Service
}

func NewSessionHandler(svc *booking.Service) *SessionHandler {
	return &SessionHandler{bookings: svc}
}

type bookReq struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Class       string `json:"class"`
}

type bookResp struct {
	Booking *booking.Booking `json:"booking"`
	Label   string           `json:"label"`
	Message string           `json:"message"`
	Display string           `json:"fare_display"`
}

func (h *SessionHandler) Open(c *gin.Context) {
	sess, err := h.bookings.OpenSession(c.Request.Context())
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, sess)
}

// Close is the Exit command.
func (h *SessionHandler) Close(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.bookings.CloseSession(c.Request.Context(), id); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"session_id": id,
		"message":    "Thank you for using Smart IRCTC Simulator 🇮🇳",
	})
}

func (h *SessionHandler) Book(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.bookings.Book(c.Request.Context(), id, booking.Request{
		Name:        req.Name,
		Age:         req.Age,
		Source:      route.Station(req.Source),
		Destination: route.Station(req.Destination),
		Class:       pricing.TravelClass(req.Class),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	msg := "Seat Confirmed!"
	if b.Status == booking.StatusWaitlisted {
		msg = "Waitlisted: " + b.StatusLabel()
	}
	writeJSON(c, http.StatusCreated, bookResp{
		Booking: b,
		Label:   b.StatusLabel(),
		Message: msg,
		Display: b.Fare.Display(),
	})
}

func (h *SessionHandler) Availability(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	avail, err := h.bookings.Availability(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"session_id": id, "classes": avail})
}
