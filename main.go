// text-rpg plays the game in the local terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"text-rpg/internal/config"
	"text-rpg/internal/dice"
	"text-rpg/internal/game"
	"text-rpg/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The screen owns stdout, so logs only go to a file when asked for.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}

	g := game.New(game.Options{
		Rand:        dice.New(cfg.Seed),
		Logger:      logger,
		WorldSize:   cfg.WorldSize,
		RecordRuns:  cfg.RecordRuns,
		Interactive: true,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g.Start()
	return tui.New(screen, tui.Local(g), tui.Options{Logger: logger}).Run()
}
