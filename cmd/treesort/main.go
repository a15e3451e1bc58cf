package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

func main() {
	verbose := flag.Bool("v", false, "log debug messages")
	log := zerolog.Nop()
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdSort{log: &log, stdout: os.Stdout}, "")
	subcommands.Register(&cmdGen{log: &log, stdout: os.Stdout}, "")
	flag.Parse()
	log = newLogger(os.Stderr, *verbose)
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
