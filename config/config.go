package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the optional TOML configuration. Command-line flags override any
// value set here; every field has a working default so the file can be
// omitted entirely.
type Config struct {
	TakeoutDir string `toml:"takeout_dir"`
	Output     string `toml:"output"`
	Database   string `toml:"database,omitempty"`
}

// Defaults returns the configuration used when no file and no flags are given.
func Defaults() *Config {
	return &Config{
		TakeoutDir: ".",
		Output:     "YouTubeChannels.opml",
	}
}

// LoadConfig reads the TOML configuration at path, filling unset fields with
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Defaults()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration as TOML to path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}

	return nil
}
