// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"railsim/internal/http/handlers"
	"railsim/internal/http/middleware"
)

func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(s.log), middleware.Recovery(s.log))
	r.Use(cors.New(s.corsConfig()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	api := r.Group("/api")
	api.GET("/menu", handlers.ListMenu)

	routeHandler := handlers.NewRouteHandler(s.routes)
	api.GET("/routes", routeHandler.Table)
	api.GET("/routes/:from/:to", routeHandler.Distance)

	fareHandler := handlers.NewFareHandler(s.routes, s.pricing, s.validator)
	api.POST("/fares/quote", fareHandler.Quote)

	sessionHandler := handlers.NewSessionHandler(s.bookings)
	api.POST("/sessions", sessionHandler.Open)
	api.DELETE("/sessions/:id", sessionHandler.Close)
	api.POST("/sessions/:id/bookings", sessionHandler.Book)
	api.GET("/sessions/:id/availability", sessionHandler.Availability)

	tatkalHandler := handlers.NewTatkalHandler(s.tatkal, s.validator)
	api.POST("/tatkal", tatkalHandler.Attempt)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(s.corsOrigins) == 0 || (len(s.corsOrigins) == 1 && s.corsOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.corsOrigins
	}
	return cfg
}
