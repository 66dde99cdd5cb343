// README: Interactive console; one process is one booking session.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"railsim/internal/console"
	"railsim/internal/logger"
	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/modules/tatkal"
	"railsim/internal/validator"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "railsim",
		Usage: "Smart IRCTC Simulator console",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "sl-seats", Value: 5, Usage: "initial Sleeper seats", EnvVars: []string{"RAILSIM_SEATS_SL"}},
			&cli.IntFlag{Name: "ac3-seats", Value: 3, Usage: "initial AC 3 Tier seats", EnvVars: []string{"RAILSIM_SEATS_3A"}},
			&cli.IntFlag{Name: "tatkal-max", Value: tatkal.DefaultMaxSeats, Usage: "upper bound for tatkal seats", EnvVars: []string{"RAILSIM_TATKAL_MAX_SEATS"}},
			&cli.StringFlag{Name: "routes-file", Usage: "JSON file with stations and distances", EnvVars: []string{"RAILSIM_ROUTES_FILE"}},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "debug, info, warn or error", EnvVars: []string{"RAILSIM_LOG_LEVEL"}},
		},
		Before: func(c *cli.Context) error {
			if c.Int("sl-seats") < 0 || c.Int("ac3-seats") < 0 {
				return cli.Exit("seat counts must be non-negative", 2)
			}
			if c.Int("tatkal-max") < 0 {
				return cli.Exit("tatkal-max must be non-negative", 2)
			}
			return nil
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	log := logger.New(logger.Config{
		Level:   c.String("log-level"),
		Format:  logger.FormatText,
		Output:  c.App.ErrWriter,
		Service: "railsim",
	})

	matrix := route.DefaultMatrix()
	if path := c.String("routes-file"); path != "" {
		m, err := route.LoadMatrixFile(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		matrix = m
	}
	routes := route.NewService(matrix)

	store := booking.NewMemoryStore(0)
	defer store.Close()

	bookings := booking.NewService(booking.ServiceDeps{
		Store:     store,
		Routes:    routes,
		Pricing:   pricing.NewService(),
		Validator: validator.NewBookingValidator(routes, c.Int("tatkal-max"), log),
		SeatPool:  booking.SeatPool{pricing.Sleeper: c.Int("sl-seats"), pricing.ThreeTierAC: c.Int("ac3-seats")},
		Logger:    log,
	})

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return console.New(c.App.Reader, c.App.Writer, console.Deps{
		Routes:   routes,
		Bookings: bookings,
		Tatkal:   tatkal.NewService(c.Int("tatkal-max"), nil, log),
		Logger:   log,
	}).Run(ctx)
}
