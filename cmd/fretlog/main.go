package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fretlog/fretlog/internal/config"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/datalayer"
	"github.com/fretlog/fretlog/internal/sheets"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "fretlog",
		Short:         "Fretlog practice routine manager CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCmd.AddCommand(migrateCmd(), statsCmd(), statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})),
	)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print collection statistics from the active backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, cleanup, err := openDataLayer(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			stats, err := data.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch stats: %w", err)
			}
			return printJSON(stats)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which data layer backend is serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, cleanup, err := openDataLayer(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			return printJSON(data.ModeInfo())
		},
	}
}

func openDataLayer(ctx context.Context) (*datalayer.DataLayer, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := slog.Default()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
	}

	mode, err := datalayer.ParseMode(cfg.DataLayer.Backend)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	var sheetsBackend datalayer.Backend
	if cfg.Sheets.BaseURL != "" {
		sheetsBackend = sheets.NewClient(cfg.Sheets)
	}
	data, err := datalayer.New(ctx, mode,
		datalayer.NewRelational(db, logger), sheetsBackend, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return data, func() { db.Close() }, nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
