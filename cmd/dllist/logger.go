package main

import (
	"github.com/sirkon/message"

	"github.com/sirkon/linkedlist/internal/logging"
)

var _ logging.Logger = messageLogger{}

type messageLogger struct{}

func (messageLogger) ListFilled(count int) {
	message.Infof("list filled with %d values", count)
}

func (messageLogger) ListDrained(removed int, rest int) {
	message.Infof("removed %d values from the front, %d left", removed, rest)
}

func (messageLogger) FrontRemoveFailed(removed int, err error) {
	message.Warningf("failed to remove from the front after %d removals: %s", removed, err)
}
