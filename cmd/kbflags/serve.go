package main

import (
	"context"
	"errors"
	"flag"
	"github.com/1f349/kbflags/logger"
	"github.com/1f349/kbflags/server"
	"github.com/cloudflare/tableflip"
	"github.com/google/subcommands"
	"github.com/spf13/afero"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type serveCmd struct{ configPath string }

func (s *serveCmd) Name() string { return "serve" }

func (s *serveCmd) Synopsis() string { return "Serve the keyboard locale flag API" }

func (s *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.configPath, "conf", "", "/path/to/config.yml : path to the config file")
}

func (s *serveCmd) Usage() string {
	return `serve [-conf <config file>]
  Serve the keyboard locale flag API using information from the config file.
  SIGHUP starts a new process and hands the listener over to it.
`
}

func (s *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger.Logger.Info("Starting...")

	config, err := loadConf(afero.NewOsFs(), s.configPath)
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return subcommands.ExitFailure
	}

	srv, err := server.NewHttpServer(config, nil)
	if err != nil {
		logger.Logger.Error("Failed to create HTTP server", "err", err)
		return subcommands.ExitFailure
	}

	upg, err := tableflip.New(tableflip.Options{})
	if err != nil {
		logger.Logger.Error("Failed to create upgrader", "err", err)
		return subcommands.ExitFailure
	}
	defer upg.Stop()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
		for i := range sig {
			if i != syscall.SIGHUP {
				upg.Stop()
				return
			}
			if err := upg.Upgrade(); err != nil {
				logger.Logger.Error("Upgrade failed", "err", err)
			}
		}
	}()

	ln, err := upg.Listen("tcp", srv.Server.Addr)
	if err != nil {
		logger.Logger.Error("Failed to listen", "addr", srv.Server.Addr, "err", err)
		return subcommands.ExitFailure
	}

	logger.Logger.Info("Starting HTTP server", "addr", ln.Addr())
	go func() {
		err := srv.Server.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("HTTP server stopped", "err", err)
		}
	}()

	if err := upg.Ready(); err != nil {
		logger.Logger.Error("Failed to signal ready", "err", err)
		return subcommands.ExitFailure
	}
	<-upg.Exit()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Warn("HTTP server shutdown", "err", err)
	}
	return subcommands.ExitSuccess
}
