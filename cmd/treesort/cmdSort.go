package main

import (
	"context"
	"flag"
	"io"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	treesort "github.com/g-m-twostay/tree-sort"
	"github.com/g-m-twostay/tree-sort/Codec"
	"github.com/g-m-twostay/tree-sort/Trees"
)

type cmdSort struct {
	log    *zerolog.Logger
	stdout io.Writer

	in, out string
	morris  bool
}

func (cmd *cmdSort) Name() string     { return "sort" }
func (cmd *cmdSort) Synopsis() string { return "sort a file of comma separated integers" }
func (cmd *cmdSort) Usage() string {
	return "sort -in FILE [-out FILE] [-morris]:\n  Sort the integers in FILE. Tokens that aren't integers are skipped and logged.\n"
}

func (cmd *cmdSort) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.in, "in", "", "input file")
	f.StringVar(&cmd.out, "out", "", "output file, stdout when empty")
	f.BoolVar(&cmd.morris, "morris", false, "walk the tree without a stack")
}

func (cmd *cmdSort) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	if cmd.in == "" || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	text, err := readFile(cmd.in)
	if err != nil {
		cmd.log.Error().Err(err).Msg("cannot read input")
		return subcommands.ExitFailure
	}
	vs, errs := treesort.Parse(string(text))
	for _, e := range errs {
		cmd.log.Warn().Str("token", e.Token).Stringer("reason", e.Reason).Msg("skipped token")
	}
	var sorted []int64
	if cmd.morris {
		sorted = Trees.SortMorris(vs)
	} else {
		sorted = treesort.SortIntegers(vs)
	}
	cmd.log.Debug().Str("in", cmd.in).Int("values", len(sorted)).Int("skipped", len(errs)).Msg("sorted")
	if err := writeOut(cmd.out, Codec.AppendSerialized(nil, sorted), cmd.stdout); err != nil {
		cmd.log.Error().Err(err).Msg("cannot write output")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
