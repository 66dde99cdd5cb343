// README: Interactive text console driving the menu over any reader/writer pair.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"railsim/internal/logger"
	"railsim/internal/menu"
	"railsim/internal/modules/booking"
	"railsim/internal/modules/pricing"
	"railsim/internal/modules/route"
	"railsim/internal/modules/tatkal"
	"railsim/internal/types"
)

const (
	title    = "🚆 Smart IRCTC Simulator"
	farewell = "Thank you for using Smart IRCTC Simulator 🇮🇳"
	tagline  = "🚆 Indian Railways – Lifeline of the Nation"
)

var errQuit = errors.New("console: quit")

type Deps struct {
	Routes   *route.Service
	Bookings *booking.Service
	Tatkal   *tatkal.Service
	Logger   *logger.Logger
}

type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	deps     Deps
	session  types.ID
	handlers map[menu.Command]func(ctx context.Context) error
}

func New(in io.Reader, out io.Writer, deps Deps) *Console {
	if deps.Routes == nil {
		deps.Routes = route.NewService(nil)
	}
	if deps.Bookings == nil {
		deps.Bookings = booking.NewService(booking.ServiceDeps{Routes: deps.Routes})
	}
	if deps.Tatkal == nil {
		deps.Tatkal = tatkal.NewService(0, nil, nil)
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	c := &Console{in: bufio.NewScanner(in), out: out, deps: deps}
	c.handlers = map[menu.Command]func(ctx context.Context) error{
		menu.DisplayRoutes:    c.displayRoutes,
		menu.BookTicket:       c.bookTicket,
		menu.SeatAvailability: c.seatAvailability,
		menu.TatkalSimulation: c.tatkalSimulation,
		menu.Exit:             c.exit,
	}
	return c
}

// Run opens a fresh ledger and loops until Exit or end of input.
func (c *Console) Run(ctx context.Context) error {
	sess, err := c.deps.Bookings.OpenSession(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	c.session = sess.ID
	defer func() {
		if err := c.deps.Bookings.CloseSession(context.WithoutCancel(ctx), c.session); err != nil && !errors.Is(err, booking.ErrSessionNotFound) {
			c.deps.Logger.Warn("close session", "session_id", c.session, "err", err)
		}
	}()

	c.println(title)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		line, err := c.prompt("Enter choice: ")
		if err != nil {
			return c.eof(err)
		}
		cmd, err := menu.Parse(line)
		if err != nil {
			c.println("❌ Invalid choice.")
			continue
		}
		if err := c.handlers[cmd](ctx); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return c.eof(err)
		}
	}
}

func (c *Console) printMenu() {
	c.println("")
	for _, cmd := range menu.All() {
		c.printf("%d. %s\n", int(cmd), cmd.Label())
	}
}

func (c *Console) displayRoutes(context.Context) error {
	c.println("📍 Train Route Distance Matrix (km)")
	fmt.Fprint(c.out, c.deps.Routes.Table().Render())
	return nil
}

func (c *Console) bookTicket(ctx context.Context) error {
	c.println("🎟️ Ticket Booking Portal")
	name, err := c.prompt("Passenger Name: ")
	if err != nil {
		return err
	}
	ageText, err := c.prompt("Age: ")
	if err != nil {
		return err
	}
	age, convErr := strconv.Atoi(ageText)
	src, err := c.prompt("Source Station: ")
	if err != nil {
		return err
	}
	dst, err := c.prompt("Destination Station: ")
	if err != nil {
		return err
	}
	class, err := c.prompt("Class (SL/3A): ")
	if err != nil {
		return err
	}
	if convErr != nil {
		c.printf("❌ Invalid age %q.\n", ageText)
		return nil
	}

	b, err := c.deps.Bookings.Book(ctx, c.session, booking.Request{
		Name:        name,
		Age:         age,
		Source:      route.Station(src),
		Destination: route.Station(dst),
		Class:       pricing.TravelClass(class),
	})
	switch {
	case errors.Is(err, booking.ErrSameStation):
		c.println("❌ Source and destination cannot be the same.")
		return nil
	case errors.Is(err, booking.ErrBadRequest),
		errors.Is(err, route.ErrUnknownStation),
		errors.Is(err, pricing.ErrUnknownClass):
		c.printf("❌ %v\n", err)
		return nil
	case err != nil:
		return err
	}

	if b.Status == booking.StatusConfirmed {
		c.println("✅ Seat Confirmed!")
	} else {
		c.printf("⏳ Waitlisted: %s\n", b.StatusLabel())
	}
	c.println("🧾 Ticket Details")
	c.printf("Passenger: %s\n", b.Name)
	c.printf("Route: %s ➜ %s\n", b.Source, b.Destination)
	c.printf("Distance: %d km\n", b.DistanceKm)
	c.printf("Fare: %s\n", b.Fare.Display())
	return nil
}

func (c *Console) seatAvailability(ctx context.Context) error {
	avail, err := c.deps.Bookings.Availability(ctx, c.session)
	if err != nil {
		return err
	}
	c.println("📊 Seat Availability & Confirmation Probability")
	for _, a := range avail {
		c.printf("%s Seats: %d\n", a.Label, a.Seats)
		c.printf("Confirmation %%: %s\n", a.ConfirmationDisplay)
	}
	return nil
}

func (c *Console) tatkalSimulation(ctx context.Context) error {
	c.println("⚡ Tatkal Booking Rush Simulation")
	text, err := c.prompt(fmt.Sprintf("Tatkal Seats Available (0-%d): ", c.deps.Tatkal.MaxSeats()))
	if err != nil {
		return err
	}
	seats, convErr := strconv.Atoi(text)
	if convErr != nil {
		c.printf("❌ Invalid seat count %q.\n", text)
		return nil
	}
	res, err := c.deps.Tatkal.Attempt(ctx, seats)
	if errors.Is(err, tatkal.ErrSeatsOutOfRange) {
		c.printf("❌ Seats must be between 0 and %d.\n", c.deps.Tatkal.MaxSeats())
		return nil
	}
	if err != nil {
		return err
	}
	if res.Outcome == tatkal.OutcomeSuccess {
		c.println("🎉 " + res.Message)
	} else {
		c.println("❌ " + res.Message)
	}
	return nil
}

func (c *Console) exit(ctx context.Context) error {
	c.println(farewell)
	c.println(tagline)
	return errQuit
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// eof turns end of input into a clean exit.
func (c *Console) eof(err error) error {
	if errors.Is(err, io.EOF) {
		c.println("")
		c.println(farewell)
		return nil
	}
	return err
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
