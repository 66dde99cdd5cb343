// README: Route handlers for the distance table and single lookups.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railsim/internal/modules/route"
)

type RouteHandler struct {
	routes *route.Service
}

func NewRouteHandler(svc *route.Service) *RouteHandler {
	return &RouteHandler{routes: svc}
}

func (h *RouteHandler) Table(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.routes.Table())
}

func (h *RouteHandler) Distance(c *gin.Context) {
	from, ok := h.routes.Lookup(c.Param("from"))
	if !ok {
		writeError(c, http.StatusNotFound, "unknown station: "+c.Param("from"))
		return
	}
	to, ok := h.routes.Lookup(c.Param("to"))
	if !ok {
		writeError(c, http.StatusNotFound, "unknown station: "+c.Param("to"))
		return
	}
	km, err := h.routes.Distance(from, to)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"from": from, "to": to, "distance_km": km})
}
