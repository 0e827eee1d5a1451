package util

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Configuration carries settings shared across the application: build
// identity injected at link time plus user preferences from the rc file.
type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`
	RootPath  string `toml:"-"`

	Color    bool   `toml:"color"`
	History  string `toml:"history"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

func DefaultConfiguration() Configuration {
	return Configuration{Color: true}
}

// LoadConfiguration reads the rc file at path over the defaults. A
// missing file is fine; a file that exists but cannot be parsed is not.
func LoadConfiguration(path string) (Configuration, error) {
	cfg := DefaultConfiguration()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load configuration %s: %w", path, err)
	}
	return cfg, nil
}
