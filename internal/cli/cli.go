// Package cli provides the command-line interface for kaza.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jwulff/kaza-go/internal/config"
	"github.com/jwulff/kaza-go/internal/render"
	"github.com/jwulff/kaza-go/internal/storage/sqlite"
	"github.com/jwulff/kaza-go/internal/tracker"
	"github.com/jwulff/kaza-go/internal/vakit"
)

// Version is set at build time.
var Version = "0.1.0-dev"

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "kaza",
	Short: "Track missed prayers that still need to be made up",
	Long: `Track missed prayers that still need to be made up.

Records are kept in a local SQLite database, grouped by prayer and
listed newest first. A city can be selected to look up today's
prayer times from a remote feed.

Environment:
  KAZA_DB_PATH     database file (default $XDG_DATA_HOME/kaza/prayer_tracker.db)
  KAZA_ADDR        listen address for 'kaza serve' (default :8080)
  KAZA_LOG_LEVEL   debug, info, warn or error
  PRAYER_API_URL   prayer time feed endpoint
  PRAYER_API_KEY   prayer time feed key`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(cityCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(typesCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd, fang.WithVersion(Version))
}

// app bundles what a command needs after startup.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	store   *sqlite.Store
	tracker *tracker.Tracker
}

// newLogger writes human-readable log lines to w.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// openApp loads configuration, opens the database and builds the tracker.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	store, err := sqlite.NewFileStore(cfg.DatabasePath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.DatabasePath).Msg("database initialization failed")
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	logger.Debug().Str("path", cfg.DatabasePath).Msg("database ready")

	times := vakit.NewClient(cfg.PrayerAPI.URL, cfg.PrayerAPI.APIKey)

	return &app{
		cfg:     cfg,
		log:     logger,
		store:   store,
		tracker: tracker.New(store, times, logger),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) palette(ctx context.Context) (render.Palette, error) {
	theme, err := a.tracker.Theme(ctx)
	if err != nil {
		return render.Palette{}, err
	}
	return render.PaletteFor(theme == tracker.ThemeDark), nil
}

// withApp opens the app for the duration of fn.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()
		return fn(cmd, args, a)
	}
}
