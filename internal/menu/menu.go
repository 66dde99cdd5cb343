// README: Top-level menu commands shared by the console and the HTTP API.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Command int

const (
	DisplayRoutes Command = iota + 1
	BookTicket
	SeatAvailability
	TatkalSimulation
	Exit
)

var ErrUnknownCommand = errors.New("unknown menu command")

func All() []Command {
	return []Command{DisplayRoutes, BookTicket, SeatAvailability, TatkalSimulation, Exit}
}

func (c Command) Label() string {
	switch c {
	case DisplayRoutes:
		return "Display Routes"
	case BookTicket:
		return "Book Ticket"
	case SeatAvailability:
		return "Seat Availability & Prediction"
	case TatkalSimulation:
		return "Tatkal Simulation"
	case Exit:
		return "Exit"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Key is the stable machine name used by the API.
func (c Command) Key() string {
	switch c {
	case DisplayRoutes:
		return "routes"
	case BookTicket:
		return "book"
	case SeatAvailability:
		return "availability"
	case TatkalSimulation:
		return "tatkal"
	case Exit:
		return "exit"
	}
	return ""
}

func (c Command) String() string {
	return c.Label()
}

// Parse accepts a 1-based menu number, a key, or a label (case-insensitive).
func Parse(s string) (Command, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= int(DisplayRoutes) && n <= int(Exit) {
			return Command(n), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	for _, c := range All() {
		if strings.EqualFold(s, c.Key()) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

type Item struct {
	Number int    `json:"number"`
	Key    string `json:"key"`
	Label  string `json:"label"`
}

func Items() []Item {
	out := make([]Item, 0, len(All()))
	for _, c := range All() {
		out = append(out, Item{Number: int(c), Key: c.Key(), Label: c.Label()})
	}
	return out
}
