package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/1f349/kbflags/locale"
	"github.com/1f349/kbflags/logger"
	"github.com/google/subcommands"
	"io"
)

type flagCmd struct{ out io.Writer }

func (f *flagCmd) Name() string { return "flag" }

func (f *flagCmd) Synopsis() string { return "Print the flag of keyboard locales" }

func (f *flagCmd) SetFlags(_ *flag.FlagSet) {}

func (f *flagCmd) Usage() string {
	return `flag <locale id>...
  Print the flag assigned to each keyboard locale
`
}

func (f *flagCmd) Execute(_ context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if fs.NArg() == 0 {
		logger.Logger.Error("Missing locale id")
		return subcommands.ExitUsageError
	}
	out := stdout(f.out)
	for _, id := range fs.Args() {
		l, err := locale.Parse(id)
		if err != nil {
			logger.Logger.Error("Invalid locale", "id", id, "err", err)
			return subcommands.ExitFailure
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", l.Flag(), l)
	}
	return subcommands.ExitSuccess
}
