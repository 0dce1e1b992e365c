package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds swipedemo configuration.
type Config struct {
	Inbox InboxConfig `mapstructure:"inbox"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

// InboxConfig points at the TOML seed of demo messages. Empty uses the
// built-in seed.
type InboxConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title  string `mapstructure:"title" validate:"required"`
	Accent string `mapstructure:"accent" validate:"required"`
	RowGap int    `mapstructure:"row_gap" validate:"min=0,max=3"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs
// only go to a file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func setDefaults(v *viper.Viper) {
	v.SetDefault("inbox.path", "")
	v.SetDefault("ui.title", "Inbox")
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.row_gap", 0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// DefaultPath is the config file used when SWIPEDEMO_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "swipedemo", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// SWIPEDEMO_. path wins over SWIPEDEMO_CONFIG when non-empty.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SWIPEDEMO_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("SWIPEDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing default file is fine; a missing explicit one is not
	if _, err := os.Stat(path); err == nil || explicit {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return decode(v)
}

// Defaults returns the built-in configuration, ignoring files and env.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	c, err := decode(v)
	if err != nil {
		panic(err)
	}
	return c
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("inbox.path", cfg.Inbox.Path)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.row_gap", cfg.UI.RowGap)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
