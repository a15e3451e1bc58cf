package main

import (
	"context"
	"flag"
	"io"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	treesort "github.com/g-m-twostay/tree-sort"
	"github.com/g-m-twostay/tree-sort/Codec"
)

type cmdGen struct {
	log    *zerolog.Logger
	stdout io.Writer

	n    int
	seed int64
	out  string
}

func (cmd *cmdGen) Name() string     { return "gen" }
func (cmd *cmdGen) Synopsis() string { return "generate random integers" }
func (cmd *cmdGen) Usage() string {
	return "gen [-n N] [-seed S] [-out FILE]:\n  Write N random integers. The same seed always gives the same integers.\n"
}

func (cmd *cmdGen) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.n, "n", 1000, "number of integers")
	f.Int64Var(&cmd.seed, "seed", 0, "random seed")
	f.StringVar(&cmd.out, "out", "", "output file, stdout when empty")
}

func (cmd *cmdGen) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.n < 0 || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	vs := treesort.GenerateRandom(cmd.n, cmd.seed)
	cmd.log.Debug().Int("n", cmd.n).Int64("seed", cmd.seed).Msg("generated")
	if err := writeOut(cmd.out, Codec.AppendSerialized(nil, vs), cmd.stdout); err != nil {
		cmd.log.Error().Err(err).Msg("cannot write output")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
