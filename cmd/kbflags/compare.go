package main

import (
	"context"
	"flag"
	"github.com/1f349/kbflags/compare"
	"github.com/1f349/kbflags/flags"
	"github.com/1f349/kbflags/logger"
	"github.com/google/subcommands"
	"github.com/spf13/afero"
)

type compareCmd struct {
	configPath string
	fs         afero.Fs
	source     flags.Source
}

func (c *compareCmd) Name() string { return "compare" }

func (c *compareCmd) Synopsis() string {
	return "Compare curated flags with flags derived from locale regions"
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "conf", "", "/path/to/config.yml : path to the config file")
}

func (c *compareCmd) Usage() string {
	return `compare [-conf <config file>]
  Log every keyboard locale whose curated flag differs from the flag of its
  most likely region. The curated flags are not changed.
`
}

func (c *compareCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	config, err := loadConf(c.fs, c.configPath)
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return subcommands.ExitFailure
	}

	src := c.source
	if src == nil {
		src = flags.RegionSource{MinConfidence: config.MinConfidence()}
	}
	ms := compare.Run(src, config.LocaleSet())
	compare.Log(logger.Logger, ms)
	logger.Logger.Info("Compared keyboard locale flags", "mismatches", len(ms))
	return subcommands.ExitSuccess
}
