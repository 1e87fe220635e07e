package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/f4ah6o/bdg/pkg/version"
	"github.com/pelletier/go-toml/v2"
)

const FileName = ".bdg.toml"

type Config struct {
	Version VersionConfig `toml:"version" json:"version"`
	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-" json:"path,omitempty"`
}

type VersionConfig struct {
	AllowYYCalver bool `toml:"allow_yy_calver" json:"allow_yy_calver"`
	YearMin       int  `toml:"year_min" json:"year_min"`
	YearMax       int  `toml:"year_max" json:"year_max"`
}

func defaultConfig() *Config {
	return &Config{
		Version: VersionConfig{AllowYYCalver: false, YearMin: 2000, YearMax: 2199},
	}
}

// VersionOptions converts the [version] table into classifier options.
// override, when non-nil, replaces allow_yy_calver.
func (c *Config) VersionOptions(override *bool) version.Options {
	opts := version.Options{
		AllowYYCalver: c.Version.AllowYYCalver,
		YearMin:       c.Version.YearMin,
		YearMax:       c.Version.YearMax,
	}
	if override != nil {
		opts.AllowYYCalver = *override
	}
	return opts
}

// ReadConfig reads .bdg.toml from the directory path. A missing file yields
// the default config.
func ReadConfig(path string) (*Config, error) {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	fileName := path + FileName
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig(), err
	}
	config := defaultConfig()
	err = toml.Unmarshal(file, config)
	if err != nil {
		return defaultConfig(), err
	}
	config.Path = filepath.Clean(fileName)
	return config, nil
}

// Discover looks for .bdg.toml in dir and each parent up to and including
// root. The nearest file wins.
func Discover(dir string, root string) (*Config, error) {
	dir = filepath.Clean(dir)
	root = filepath.Clean(root)
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return ReadConfig(dir)
		}
		if dir == root {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return defaultConfig(), nil
}
