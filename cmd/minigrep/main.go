package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"minigrep/internal/app"
	"minigrep/internal/cli"
	"minigrep/internal/config"
	"minigrep/internal/logger"
)

const (
	exitOK          = 0
	exitSourceError = 1
	exitUsageError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, lookupEnv func(string) (string, bool), stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, help, err := cli.Parse(args, lookupEnv, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "Problem parsing arguments:", err)
		cli.Usage(stderr)
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return exitUsageError
	}
	if help {
		return exitOK
	}

	log := newLogger(stderr)
	defer func() { _ = log.Sync() }()

	if err := app.Run(*cfg, stdin, stdout, log); err != nil {
		log.Debug("search failed", zap.Error(err))
		fmt.Fprintln(stderr, "Application error:", err)
		return exitSourceError
	}
	return exitOK
}

// newLogger falls back to a no-op logger so a bad CONFIG_PATH never blocks a search.
func newLogger(stderr io.Writer) *zap.Logger {
	rc, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "warning: config ignored:", err)
		rc = config.Default()
	}
	l, err := logger.ProvideLogger(rc)
	if err != nil {
		fmt.Fprintln(stderr, "warning: logger disabled:", err)
		return zap.NewNop()
	}
	return l
}
