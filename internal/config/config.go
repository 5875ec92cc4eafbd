package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvPath overrides the config file location when set.
const EnvPath = "TERMCHART_CONFIG"

// Config represents the optional termchart configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Theme    ThemeConfig    `toml:"theme"`
}

// DefaultsConfig holds persistent flag defaults.
type DefaultsConfig struct {
	Width    *int    `toml:"width"`
	Height   *int    `toml:"height"`
	Axis     *bool   `toml:"axis"`
	Legend   *bool   `toml:"legend"`
	Top      *int    `toml:"top"`
	Format   *string `toml:"format"`
	Interval *string `toml:"interval"`
}

// ThemeConfig holds optional dashboard color overrides.
type ThemeConfig struct {
	Green  *string `toml:"green"`
	Blue   *string `toml:"blue"`
	Yellow *string `toml:"yellow"`
	Red    *string `toml:"red"`
	Teal   *string `toml:"teal"`
	Mauve  *string `toml:"mauve"`
	Muted  *string `toml:"muted"`
	Dim    *string `toml:"dim"`
	Bright *string `toml:"bright"`
}

// Path returns the resolved path to the config file: $TERMCHART_CONFIG if
// set, otherwise termchart/config.toml under the XDG config directory.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "termchart", "config.toml")
}

// Load reads the config file from Path. Returns a zero Config (no error) if
// the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// Starter returns the config written by Write when no config exists yet:
// every default spelled out so users can edit values in place. A width of 0
// keeps charts as wide as the terminal.
func Starter() Config {
	width, height, top := 0, 8, 10
	axis, legend := false, true
	format, interval := "", "2s"
	return Config{
		Defaults: DefaultsConfig{
			Width:    &width,
			Height:   &height,
			Axis:     &axis,
			Legend:   &legend,
			Top:      &top,
			Format:   &format,
			Interval: &interval,
		},
	}
}

// ErrExists is returned by Write when the target file is already present.
var ErrExists = errors.New("config file already exists")

// Write encodes cfg to path, creating the parent directory if needed. An
// existing file is left untouched and reported with ErrExists.
func Write(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrExists)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}
