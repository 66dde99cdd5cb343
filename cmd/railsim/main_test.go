package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"railsim"}, args...))
	return out.String(), err
}

func TestApp_SeatFlags(t *testing.T) {
	out, err := runApp(t, "2\nAsha\n30\nMumbai\nDelhi\nSL\n5\n", "--sl-seats", "0")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "⏳ Waitlisted: WL1") {
		t.Fatalf("expected waitlist with zero SL seats:\n%s", out)
	}
}

func TestApp_RejectsNegativeSeats(t *testing.T) {
	if _, err := runApp(t, "", "--ac3-seats", "-1"); err == nil {
		t.Fatal("expected error for negative seats")
	}
}
