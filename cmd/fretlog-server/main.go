package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/fretlog/fretlog/internal/bootstrap"
	"github.com/fretlog/fretlog/internal/config"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/datalayer"
	"github.com/fretlog/fretlog/internal/extraction"
	"github.com/fretlog/fretlog/internal/server"
	"github.com/fretlog/fretlog/internal/sheets"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "fretlog-server",
		Short:         "Fretlog practice routine HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	app := bootstrap.New(logger)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook("database", func(ctx context.Context) error {
		return db.Close()
	})
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("database.Migrate() > %w", err)
	}

	mode, err := datalayer.ParseMode(cfg.DataLayer.Backend)
	if err != nil {
		return fmt.Errorf("datalayer.ParseMode() > %w", err)
	}
	var sheetsBackend datalayer.Backend
	if cfg.Sheets.BaseURL != "" {
		client := sheets.NewClient(cfg.Sheets)
		app.AddShutdownHook("sheets client", func(ctx context.Context) error {
			return client.Close()
		})
		sheetsBackend = client
	}
	data, err := datalayer.New(ctx, mode,
		datalayer.NewRelational(db, logger), sheetsBackend, logger)
	if err != nil {
		return fmt.Errorf("datalayer.New() > %w", err)
	}

	var extractor extraction.Client
	if cfg.Extraction.APIKey != "" {
		client := extraction.NewHTTPClient(cfg.Extraction)
		app.AddShutdownHook("extraction client", func(ctx context.Context) error {
			return client.Close()
		})
		extractor = client
	}

	handler := server.NewHandler(data, extractor, logger)
	mux := handler.Routes()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook("http server", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("backend", data.ModeInfo().Mode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
