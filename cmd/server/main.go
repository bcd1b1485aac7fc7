// text-rpg-server serves the game over HTTP, websockets and SSH, all backed
// by one session store. Build:
//
//	go build -o text-rpg-server ./cmd/server
//
// Usage:
//
//	./text-rpg-server [--config text-rpg.yaml]
//
// Play in a browser client against :8080, or in a terminal:
//
//	ssh -p 2222 localhost
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	gossh "github.com/gliderlabs/ssh"

	"text-rpg/internal/config"
	"text-rpg/internal/dice"
	"text-rpg/internal/game"
	"text-rpg/internal/session"
	internalssh "text-rpg/internal/ssh"
	"text-rpg/internal/web"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// gameFactory builds games for one process. With a fixed seed each new game
// gets the next seed in sequence so runs are reproducible but distinct.
type gameFactory struct {
	cfg    config.Config
	logger *slog.Logger
	next   atomic.Int64
}

func newGameFactory(cfg config.Config, logger *slog.Logger) *gameFactory {
	return &gameFactory{cfg: cfg, logger: logger}
}

func (f *gameFactory) seed() int64 {
	if f.cfg.Seed == 0 {
		return 0
	}
	return f.cfg.Seed + f.next.Add(1) - 1
}

func (f *gameFactory) New(interactive bool) *game.Game {
	return game.New(game.Options{
		Rand:        dice.New(f.seed()),
		Logger:      f.logger,
		WorldSize:   f.cfg.WorldSize,
		RecordRuns:  f.cfg.RecordRuns,
		Interactive: interactive,
	})
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	games := newGameFactory(cfg, logger)
	store := session.New(session.Options{
		TTL:     cfg.SessionTTL,
		Max:     cfg.MaxSessions,
		NewGame: func() *game.Game { return games.New(false) },
		Logger:  logger,
	})
	go store.Run(ctx)

	gin.SetMode(gin.ReleaseMode)
	api := web.New(store, logger)
	api.CookieMaxAge = int(cfg.SessionTTL / time.Second)
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: api.Handler()}

	signer, err := internalssh.LoadOrCreateHostKey(cfg.HostKey, logger)
	if err != nil {
		return err
	}
	sshSrv := internalssh.NewServer(cfg.SSHAddr, signer, &internalssh.Handler{
		Store:   store,
		NewGame: func() *game.Game { return games.New(true) },
		Logger:  logger,
	})

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		logger.Info("ssh listening", "addr", cfg.SSHAddr)
		if err := sshSrv.ListenAndServe(); !errors.Is(err, gossh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	_ = sshSrv.Shutdown(shutdownCtx)
	logger.Info("shut down", "sessions", store.Len())
	return err
}
