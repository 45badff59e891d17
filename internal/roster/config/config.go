package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	AddModeSelect = "select"
	AddModeFree   = "free"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds runtime settings for the roster CLI.
type Config struct {
	DataFile         string `mapstructure:"data_file" validate:"required"`
	Storage          string `mapstructure:"storage" validate:"oneof=file sqlite"`
	DBPath           string `mapstructure:"db_path" validate:"required_if=Storage sqlite"`
	TopN             int    `mapstructure:"top_n" validate:"gte=1"`
	AddMode          string `mapstructure:"add_mode" validate:"oneof=select free"`
	StrictCategories bool   `mapstructure:"strict_categories"`
	LogLevel         string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogBackend       string `mapstructure:"log_backend" validate:"oneof=zap slog"`
	Color            string `mapstructure:"color" validate:"oneof=auto always never"`
	Seed             uint64 `mapstructure:"seed"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = common.DefaultDataFile
	c.Storage = "file"
	c.DBPath = "roster.db"
	c.TopN = common.DefaultTopN
	c.AddMode = AddModeSelect
	c.StrictCategories = false
	c.LogLevel = "info"
	c.LogBackend = "zap"
	c.Color = ColorAuto
	c.Seed = 0
}

// Validate checks enumerated and required settings.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s=%v (%s)", fe.Field(), fe.Value(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// flag name -> config key
var flagKeys = map[string]string{
	"file":        "data_file",
	"storage":     "storage",
	"db":          "db_path",
	"top":         "top_n",
	"add-mode":    "add_mode",
	"strict":      "strict_categories",
	"log-level":   "log_level",
	"log-backend": "log_backend",
	"color":       "color",
	"seed":        "seed",
}

// BindFlags registers the configuration flags on fs. Flag defaults mirror
// LoadDefaults so help output shows the effective defaults.
func BindFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP("config", "c", "", "config file (JSON or YAML)")
	fs.StringP("file", "f", d.DataFile, "roster data file")
	fs.String("storage", d.Storage, `storage backend: "file" or "sqlite"`)
	fs.String("db", d.DBPath, "SQLite database path")
	fs.IntP("top", "n", d.TopN, "records shown by sort-and-list")
	fs.String("add-mode", d.AddMode, `add prompts: "select" or "free"`)
	fs.Bool("strict", d.StrictCategories, "reject records outside the category catalog")
	fs.StringP("log-level", "l", d.LogLevel, "log level: debug, info, warn, error")
	fs.String("log-backend", d.LogBackend, `log backend: "zap" or "slog"`)
	fs.String("color", d.Color, "colour output: auto, always, never")
	fs.Uint64("seed", d.Seed, "random generator seed (0 = random)")
}

// LoadConfig builds a Config from defaults, the optional config file named
// by the "config" flag, ROSTER_* environment variables and explicitly set
// flags, in that order of increasing precedence. fs may be nil.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	var d Config
	d.LoadDefaults()
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("storage", d.Storage)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("top_n", d.TopN)
	v.SetDefault("add_mode", d.AddMode)
	v.SetDefault("strict_categories", d.StrictCategories)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_backend", d.LogBackend)
	v.SetDefault("color", d.Color)
	v.SetDefault("seed", d.Seed)

	v.SetEnvPrefix("roster")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}

		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
