package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Selector SelectorConfig
	Input    InputConfig
	UI       UIConfig
	Log      LogConfig
}

// SelectorConfig holds radial selector settings.
type SelectorConfig struct {
	DeadZone    float64 `mapstructure:"dead_zone"`
	Labels      []string
	CenterLabel string `mapstructure:"center_label"`
}

// InputConfig converts terminal cells into pointer units.
type InputConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	SelectedColor string `mapstructure:"selected_color"`
	ActiveColor   string `mapstructure:"active_color"`
}

// LogConfig holds the debug log location. An empty path disables logging.
type LogConfig struct {
	Path string
}

var defaultLabels = []string{"up", "up-right", "right", "down-right", "down", "down-left", "left", "up-left"}

// Load reads configuration from file and env. Env var overrides use prefix RADIAL_.
// A missing file at the default location is not an error; a missing file named
// by RADIAL_CONFIG is.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("RADIAL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "radialmenu"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RADIAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

// Parse reads TOML data on top of the defaults, ignoring the environment.
func Parse(data []byte) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(string(data))); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("selector.dead_zone", 20.0)
	v.SetDefault("selector.labels", defaultLabels)
	v.SetDefault("selector.center_label", "cancel")
	v.SetDefault("input.cell_width", 8.0)
	v.SetDefault("input.cell_height", 16.0)
	v.SetDefault("ui.selected_color", "#b4befe")
	v.SetDefault("ui.active_color", "#a6e3a1")
	v.SetDefault("log.path", "")
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values the selector and host depend on.
func (c Config) Validate() error {
	if c.Selector.DeadZone < 0 {
		return fmt.Errorf("selector.dead_zone: must not be negative, got %v", c.Selector.DeadZone)
	}
	if len(c.Selector.Labels) != 8 {
		return fmt.Errorf("selector.labels: need 8 labels, got %d", len(c.Selector.Labels))
	}
	if c.Input.CellWidth <= 0 || c.Input.CellHeight <= 0 {
		return fmt.Errorf("input: cell size must be positive, got %vx%v", c.Input.CellWidth, c.Input.CellHeight)
	}
	return nil
}
