// Package main runs the Magic Ruby adventure on the terminal, or serves it as
// an MCP tool with -mcp.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/magicruby/internal/config"
	"github.com/cory-johannsen/magicruby/internal/console"
	"github.com/cory-johannsen/magicruby/internal/game/command"
	"github.com/cory-johannsen/magicruby/internal/game/world"
	"github.com/cory-johannsen/magicruby/internal/mcpserver"
	"github.com/cory-johannsen/magicruby/internal/observability"
	"github.com/cory-johannsen/magicruby/internal/server"
)

// version is overridden at build time with -ldflags.
var version = "dev"

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and RUBY_* environment when empty)")
	serveMCP := flag.Bool("mcp", false, "serve the game as an MCP tool instead of playing on the terminal")
	listCommands := flag.Bool("commands", false, "print the command vocabulary and exit")
	flag.Parse()

	if *listCommands {
		printCommands(os.Stdout, command.DefaultRegistry())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "adventure")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := world.Validate(); err != nil {
		logger.Fatal("invalid world catalog", zap.Error(err))
	}
	logger.Info("world loaded",
		zap.Int("rooms", world.RoomCount()),
		zap.Int("objects", world.ObjectCount()),
		zap.String("version", version),
	)

	lifecycle := server.NewLifecycle(logger)
	if *serveMCP {
		game := mcpserver.NewGame(logger)
		lifecycle.Add("mcp", mcpserver.NewService(cfg.MCP, game, version, logger))
		logger.Info("mcp mode",
			zap.String("addr", cfg.MCP.Addr()),
			zap.String("path", cfg.MCP.Path),
		)
	} else {
		session := console.NewSession(os.Stdin, os.Stdout, cfg.Console, logger)
		lifecycle.Add("console", session)
	}

	logger.Info("adventure initialized", zap.Duration("startup", time.Since(start)))

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Error("adventure stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// printCommands writes the verb table grouped by category. Only the first
// three letters of a word are significant.
func printCommands(w io.Writer, r *command.Registry) {
	byCategory := r.CommandsByCategory()
	for _, cat := range []string{command.CategoryMovement, command.CategoryWorld, command.CategoryPuzzle, command.CategorySystem} {
		fmt.Fprintf(w, "%s:\n", strings.ToUpper(cat))
		for _, cmd := range byCategory[cat] {
			words := append([]string{cmd.Name}, cmd.Aliases...)
			fmt.Fprintf(w, "  %-12s %s\n", strings.Join(words, ", "), cmd.Help)
		}
	}
}
