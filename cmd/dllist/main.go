package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"

	"github.com/sirkon/linkedlist/internal/demo"
)

func main() {
	var cli struct {
		Count    int  `short:"n" default:"50" help:"Number of values to append."`
		Drop     int  `short:"d" default:"0" help:"Number of values to remove from the front."`
		Backward bool `short:"b" help:"Render from the tail to the head."`
	}

	kong.Parse(
		&cli,
		kong.Name("dllist"),
		kong.Description("Fill a doubly linked list, drop values from its front and render the rest."),
	)

	cfg := demo.Config{
		Count:    cli.Count,
		Drop:     cli.Drop,
		Backward: cli.Backward,
	}
	if err := demo.Run(cfg, messageLogger{}, os.Stdout); err != nil {
		message.Critical(errors.Wrap(err, "run demo"))
	}
}
