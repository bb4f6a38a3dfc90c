// Package main replays walkthrough scripts against the adventure and reports
// every unmet expectation.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/magicruby/internal/config"
	"github.com/cory-johannsen/magicruby/internal/console"
	"github.com/cory-johannsen/magicruby/internal/observability"
	"github.com/cory-johannsen/magicruby/internal/server"
	"github.com/cory-johannsen/magicruby/internal/walkthrough"
)

func main() {
	dir := flag.String("dir", "content/walkthroughs", "directory of walkthrough YAML files")
	level := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := observability.NewLogger(config.LoggingConfig{Level: *level, Format: "console"}, "walkthrough")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var scripts []*walkthrough.Script
	if flag.NArg() > 0 {
		for _, path := range flag.Args() {
			s, err := walkthrough.LoadScriptFromFile(path)
			if err != nil {
				logger.Fatal("loading script", zap.String("path", path), zap.Error(err))
			}
			scripts = append(scripts, s)
		}
	} else {
		scripts, err = walkthrough.LoadScriptsFromDir(*dir)
		if err != nil {
			logger.Fatal("loading scripts", zap.String("dir", *dir), zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	color := console.ColorEnabled(config.ColorAuto, os.Stdout)
	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("walkthrough", &server.FuncService{
		StartFn: func() error {
			if n := runScripts(ctx, os.Stdout, scripts, color, logger); n > 0 {
				return fmt.Errorf("%d of %d scripts failed", n, len(scripts))
			}
			return nil
		},
		StopFn: cancel,
	})
	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Error("walkthrough run failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// runScripts replays scripts in order until ctx is done and returns the
// number that failed.
func runScripts(ctx context.Context, w io.Writer, scripts []*walkthrough.Script, color bool, logger *zap.Logger) int {
	paint := func(c, format string, args ...any) string {
		if !color {
			return fmt.Sprintf(format, args...)
		}
		return console.Colorf(c, format, args...)
	}

	failed := 0
	for _, s := range scripts {
		if ctx.Err() != nil {
			logger.Warn("walkthrough interrupted", zap.String("next", s.Name))
			break
		}
		rep := walkthrough.Run(s, logger)
		if rep.Passed() {
			fmt.Fprintln(w, paint(console.Green, "PASS %s (%d steps)", rep.Name, rep.Steps))
			continue
		}
		failed++
		fmt.Fprintln(w, paint(console.Yellow, "FAIL %s", rep.Name))
		for _, f := range rep.Failures {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}
	return failed
}
