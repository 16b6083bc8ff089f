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
	Matrix MatrixConfig
	Log    LogConfig
	UI     UIConfig
}

// MatrixConfig holds grid sizing settings.
type MatrixConfig struct {
	DefaultDimension int `mapstructure:"default_dimension"`
	MaxDimension     int `mapstructure:"max_dimension"`
}

// LogConfig holds log file settings. The TUI owns the terminal, so logs
// never go to stdout.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CellWidth       int    `mapstructure:"cell_width"`
	KeybindingsPath string `mapstructure:"keybindings_path"`
}

const (
	defaultDimension = 3
	defaultMaxDim    = 12
	defaultCellWidth = 6
	minCellWidth     = 3
	maxCellWidth     = 16
)

// Load reads configuration from file and env. Env var overrides use prefix MATRIXCALC_.
// An explicit path wins over MATRIXCALC_CONFIG, which wins over the user config dir.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("matrix.default_dimension", defaultDimension)
	v.SetDefault("matrix.max_dimension", defaultMaxDim)
	v.SetDefault("log.path", filepath.Join(stateDir(), "matrixcalc.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.cell_width", defaultCellWidth)
	v.SetDefault("ui.keybindings_path", filepath.Join(Dir(), "keybindings.toml"))

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("MATRIXCALC_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MATRIXCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config is fine; a named file that is missing or broken is not.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// Dir returns the directory for matrixcalc config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".matrixcalc")
	}
	return filepath.Join(dir, "matrixcalc")
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "matrixcalc")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "matrixcalc")
	}
	return os.TempDir()
}

func normalize(c Config) Config {
	if c.Matrix.MaxDimension < 1 {
		c.Matrix.MaxDimension = defaultMaxDim
	}
	if c.Matrix.DefaultDimension < 1 {
		c.Matrix.DefaultDimension = defaultDimension
	}
	c.Matrix.DefaultDimension = min(c.Matrix.DefaultDimension, c.Matrix.MaxDimension)
	if c.UI.CellWidth < minCellWidth || c.UI.CellWidth > maxCellWidth {
		c.UI.CellWidth = defaultCellWidth
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c
}
