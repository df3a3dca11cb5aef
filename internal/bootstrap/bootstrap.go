// Package bootstrap manages process lifecycle for the fretlog binaries.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownGrace bounds how long shutdown hooks may run once the
// process receives a stop signal. The HTTP server drain and the database
// close both have to finish inside this window.
const DefaultShutdownGrace = 15 * time.Second

// App runs a long-lived process and tears it down in reverse registration
// order when the process is interrupted.
type App struct {
	logger *slog.Logger
	grace  time.Duration

	mu    sync.Mutex
	hooks []namedHook
}

type namedHook struct {
	name string
	fn   func(ctx context.Context) error
}

// New creates an App that reports shutdown progress through logger.
func New(logger *slog.Logger) *App {
	return &App{logger: logger, grace: DefaultShutdownGrace}
}

// AddShutdownHook registers fn to run during shutdown under the given name.
// Hooks run in reverse registration order, so resources close in the
// opposite order they were opened. Safe for concurrent use.
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, namedHook{name: name, fn: fn})
}

// Run executes run until it returns or the process receives SIGINT or
// SIGTERM. On a signal, the shutdown hooks run under the grace period and
// their joined errors are returned. If run returns first, its error is
// returned and hooks do not run.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		return a.shutdown()
	case err := <-errCh:
		return err
	}
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.grace)
	defer cancel()

	a.mu.Lock()
	hooks := make([]namedHook, len(a.hooks))
	copy(hooks, a.hooks)
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		if err := h.fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed",
				slog.String("hook", h.name), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		a.logger.Info("shutdown hook finished", slog.String("hook", h.name))
	}
	return errors.Join(errs...)
}
