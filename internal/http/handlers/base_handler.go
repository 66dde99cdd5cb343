// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/modules/tatkal"
	"railsim/internal/types"
	"railsim/internal/validator"
)

type errorResponse struct {
	Error   string                     `json:"error"`
	Details validator.ValidationErrors `json:"details,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// sessionID rejects path ids that could never have been issued.
func sessionID(c *gin.Context) (types.ID, bool) {
	id := types.ID(c.Param("id"))
	if !id.Valid() {
		writeError(c, http.StatusBadRequest, "invalid session id")
		return "", false
	}
	return id, true
}

func writeBookingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(c, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: verrs})
	case errors.Is(err, booking.ErrSameStation),
		errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, route.ErrUnknownStation),
		errors.Is(err, pricing.ErrUnknownClass),
		errors.Is(err, tatkal.ErrSeatsOutOfRange):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
