package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	return New(slog.New(slog.DiscardHandler))
}

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := newTestApp()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns error", func(t *testing.T) {
		app := newTestApp()
		want := errors.New("run failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("shutdown hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := newTestApp()
		var mu sync.Mutex
		var order []string
		record := func(name string) func(ctx context.Context) error {
			return func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			}
		}

		app.AddShutdownHook("first", record("first"))
		app.AddShutdownHook("second", record("second"))
		app.AddShutdownHook("third", record("third"))

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, order)
	})

	t.Run("hook registered from inside run callback", func(t *testing.T) {
		app := newTestApp()
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook("late", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("hook errors are joined and remaining hooks still run", func(t *testing.T) {
		app := newTestApp()
		boomSecond := errors.New("second failed")
		firstRan := false

		app.AddShutdownHook("first", func(ctx context.Context) error {
			firstRan = true
			return nil
		})
		app.AddShutdownHook("second", func(ctx context.Context) error {
			return boomSecond
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, boomSecond)
		assert.True(t, firstRan)
	})

	t.Run("hooks receive a bounded context", func(t *testing.T) {
		app := newTestApp()
		hasDeadline := false

		app.AddShutdownHook("check deadline", func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hasDeadline)
	})
}
