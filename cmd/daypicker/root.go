package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"daypicker/internal/config"
	"daypicker/internal/daypicker"
	"daypicker/internal/storage"
	"daypicker/internal/ui"
)

var (
	configPath string
	monthFlag  string
	monthsFlag int
)

var rootCmd = &cobra.Command{
	Use:          "daypicker",
	Short:        "Terminal calendar day picker",
	Long:         "Browse months, move between days with the keyboard and keep a persistent set of selected days.",
	SilenceUsage: true,
	RunE:         runPicker,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: <user config dir>/daypicker/config.toml)")
	rootCmd.Flags().StringVar(&monthFlag, "month", "", "Month to show first (YYYY-MM)")
	rootCmd.Flags().IntVar(&monthsFlag, "months", 0, "Number of months shown side by side (overrides config)")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("months") {
		cfg.NumberOfMonths = monthsFlag
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func runPicker(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	opts := []ui.Option{ui.WithLogger(logger)}
	if monthFlag != "" {
		m, err := daypicker.ParseMonth(monthFlag)
		if err != nil {
			return err
		}
		opts = append(opts, ui.WithInitialMonth(m))
	}

	logger.Info("starting picker", "db", cfg.DBPath, "months", cfg.NumberOfMonths)
	if err := ui.Run(store, cfg, opts...); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	return nil
}

// newLogger writes text logs to the configured file; the terminal belongs
// to the UI.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogPath == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
