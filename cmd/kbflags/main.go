package main

import (
	"context"
	"flag"
	"github.com/1f349/kbflags/conf"
	"github.com/google/subcommands"
	"github.com/spf13/afero"
	"io"
	"os"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&flagCmd{}, "")
	subcommands.Register(&listCmd{}, "")
	subcommands.Register(&compareCmd{}, "")
	subcommands.Register(&serveCmd{}, "")
	flag.Parse()

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// loadConf reads the config file at path, an empty path uses the defaults.
func loadConf(fs afero.Fs, path string) (conf.Conf, error) {
	if path == "" {
		return conf.Default(), nil
	}
	return conf.Load(fs, path)
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
