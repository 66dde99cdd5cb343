// README: Entry point; loads config, wires services, starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"railsim/internal/config"
	httptransport "railsim/internal/http"
	"railsim/internal/infra"
	"railsim/internal/logger"
	"railsim/internal/modules/booking"
	"railsim/internal/modules/journal"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/modules/tatkal"
	"railsim/internal/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("load config", "err", err)
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: "railsim-api"})

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	matrix := route.DefaultMatrix()
	if cfg.Routes.File != "" {
		matrix, err = route.LoadMatrixFile(cfg.Routes.File)
		if err != nil {
			log.Fatal("load routes", "file", cfg.Routes.File, "err", err)
		}
	}
	routeSvc := route.NewService(matrix)
	pricingSvc := pricing.NewService()

	sinks := journal.Multi{journal.NewLogSink(log)}
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal("postgres", "err", err)
		}
		defer dbPool.Close()
		sinks = append(sinks, journal.NewPostgresSink(dbPool))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		writer := infra.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer writer.Close()
		sinks = append(sinks, journal.NewKafkaSink(writer))
	}

	var store booking.LedgerStore
	switch cfg.Ledger.Backend {
	case config.LedgerRedis:
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal("redis", "err", err)
		}
		defer redisClient.Close()
		store = booking.NewRedisStore(redisClient, cfg.Ledger.SessionTTL)
	default:
		mem := booking.NewMemoryStore(cfg.Ledger.SessionTTL)
		defer mem.Close()
		store = mem
	}

	v := validator.NewBookingValidator(routeSvc, cfg.Tatkal.MaxSeats, log)
	bookingSvc := booking.NewService(booking.ServiceDeps{
		Store:     store,
		Routes:    routeSvc,
		Pricing:   pricingSvc,
		Validator: v,
		Journal:   sinks,
		SeatPool:  booking.SeatPool{pricing.Sleeper: cfg.Ledger.SeatsSL, pricing.ThreeTierAC: cfg.Ledger.Seats3A},
		Logger:    log.With("module", "booking"),
	})
	tatkalSvc := tatkal.NewService(cfg.Tatkal.MaxSeats, sinks, log.With("module", "tatkal"))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Routes:      routeSvc,
		Pricing:     pricingSvc,
		Bookings:    bookingSvc,
		Tatkal:      tatkalSvc,
		Validator:   v,
		Logger:      log.With("module", "http"),
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
		}
	}()

	log.Info("listening", "addr", cfg.HTTP.Addr, "ledger", cfg.Ledger.Backend, "sinks", len(sinks))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("http server", "err", err)
	}
	log.Info("stopped")
}
