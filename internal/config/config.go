package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"daypicker/internal/daypicker"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "daypicker.db"
	DefaultLogName        = "daypicker.log"
	appDirName            = "daypicker"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	PrevDay   string `toml:"prev_day"`
	NextDay   string `toml:"next_day"`
	Activate  string `toml:"activate"`
	Focus     string `toml:"focus"`
	Blur      string `toml:"blur"`
	PrevMonth string `toml:"prev_month"`
	NextMonth string `toml:"next_month"`
	GoTo      string `toml:"goto"`
	Today     string `toml:"today"`
	Help      string `toml:"help"`
}

type Config struct {
	DBPath            string `toml:"db_path"`
	LogPath           string `toml:"log_path"`
	LogLevel          string `toml:"log_level"`
	Locale            string `toml:"locale"`
	NumberOfMonths    int    `toml:"number_of_months"`
	FromMonth         string `toml:"from_month"`
	ToMonth           string `toml:"to_month"`
	EnableOutsideDays bool   `toml:"enable_outside_days"`
	CanChangeMonth    bool   `toml:"can_change_month"`
	DisablePastDays   bool   `toml:"disable_past_days"`
	Keys              Keymap `toml:"keys"`
}

// ResolveConfigPath returns the config file under the user config dir,
// falling back to the working directory.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(filepath.Dir(path), DefaultDBName)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:         filepath.Join(dir, DefaultDBName),
		LogPath:        filepath.Join(dir, DefaultLogName),
		LogLevel:       "info",
		Locale:         daypicker.DefaultLocale,
		NumberOfMonths: 1,
		CanChangeMonth: true,
		Keys: Keymap{
			Quit:      "q",
			PrevDay:   "h",
			NextDay:   "l",
			Activate:  "enter",
			Focus:     "tab",
			Blur:      "esc",
			PrevMonth: "[",
			NextMonth: "]",
			GoTo:      "g",
			Today:     "t",
			Help:      "?",
		},
	}
}

// Validate rejects settings the picker cannot navigate with.
func (c Config) Validate() error {
	if c.NumberOfMonths < 1 {
		return fmt.Errorf("number_of_months: %w", daypicker.ErrInvalidNumberOfMonths)
	}
	b, err := c.Bounds()
	if err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return b.Validate()
}

// Bounds parses from_month and to_month. Empty values leave a side open.
func (c Config) Bounds() (daypicker.Bounds, error) {
	var b daypicker.Bounds
	var err error
	if s := strings.TrimSpace(c.FromMonth); s != "" {
		if b.From, err = daypicker.ParseMonth(s); err != nil {
			return b, fmt.Errorf("from_month: %w", err)
		}
	}
	if s := strings.TrimSpace(c.ToMonth); s != "" {
		if b.To, err = daypicker.ParseMonth(s); err != nil {
			return b, fmt.Errorf("to_month: %w", err)
		}
	}
	return b, nil
}

func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
