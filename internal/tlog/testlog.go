// Package tlog prints errors with their structured context in tests.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signals error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// ExpectIs logs err when it matches target and signals it otherwise.
// Returns true when err matches.
func ExpectIs(t TestingPrinter, err, target error) bool {
	t.Helper()

	if errors.Is(err, target) {
		t.Log(render(err, bold))
		return true
	}

	if err == nil {
		t.Error(render(errors.New("error expected").Str("expected", target.Error()), red))
		return false
	}

	t.Error(render(errors.Wrap(err, "unexpected error").Str("expected", target.Error()), red))
	return false
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		if len(v.name) > width {
			width = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
