package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/1f349/kbflags/lists"
	"github.com/1f349/kbflags/logger"
	"github.com/google/subcommands"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"io"
)

type listCmd struct {
	configPath string
	lang       string
	fs         afero.Fs
	out        io.Writer
}

func (l *listCmd) Name() string { return "list" }

func (l *listCmd) Synopsis() string { return "List keyboard locales with their flags" }

func (l *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.configPath, "conf", "", "/path/to/config.yml : path to the config file")
	f.StringVar(&l.lang, "lang", "", "language used for the labels, overrides the config")
}

func (l *listCmd) Usage() string {
	return `list [-conf <config file>] [-lang <language>]
  List the configured keyboard locales with their flag and label
`
}

func (l *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	config, err := loadConf(l.fs, l.configPath)
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return subcommands.ExitFailure
	}

	tag, _ := config.DisplayTag()
	if l.lang != "" {
		tag, err = language.Parse(l.lang)
		if err != nil {
			logger.Logger.Error("Invalid language", "lang", l.lang, "err", err)
			return subcommands.ExitUsageError
		}
	}

	out := stdout(l.out)
	for _, i := range lists.ListKeyboardLocaleIn(tag, config.LocaleSet()) {
		_, _ = fmt.Fprintf(out, "%s %s\t%s\n", i.Flag, i.Value, i.Label)
	}
	return subcommands.ExitSuccess
}
