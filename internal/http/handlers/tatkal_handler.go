// README: Tatkal simulation handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railsim/internal/modules/tatkal"
	"railsim/internal/validator"
)

type TatkalHandler struct {
	tatkal    *tatkal.Service
	validator *validator.BookingValidator
}

func NewTatkalHandler(svc *tatkal.Service, v *validator.BookingValidator) *TatkalHandler {
	return &TatkalHandler{tatkal: svc, validator: v}
}

type tatkalReq struct {
	Seats *int `json:"seats"`
}

func (h *TatkalHandler) Attempt(c *gin.Context) {
	var req tatkalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Seats == nil {
		writeError(c, http.StatusBadRequest, "missing seats")
		return
	}
	if h.validator != nil {
		if err := h.validator.ValidateTatkal(tatkal.Request{Seats: *req.Seats}); err != nil {
			writeBookingError(c, err)
			return
		}
	}
	res, err := h.tatkal.Attempt(c.Request.Context(), *req.Seats)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}
