// Package config reads the dxc configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// Config holds defaults for the dxc commands. Unset fields leave the
// built-in defaults in place; command-line flags override both.
type Config struct {
	Compress *bool   `yaml:"compress"`
	TTL      *uint32 `yaml:"ttl"`
	CheckTTL *bool   `yaml:"check-ttl"`

	// configPath is the file this config was read from.
	configPath string `yaml:"-"`
}

// Path returns the file the config was read from, or the default location
// if none existed.
func (c Config) Path() string {
	return c.configPath
}

// CompressOr returns the configured compress setting, or def if unset.
func (c Config) CompressOr(def bool) bool {
	if c.Compress == nil {
		return def
	}
	return *c.Compress
}

// CheckTTLOr returns the configured check-ttl setting, or def if unset.
func (c Config) CheckTTLOr(def bool) bool {
	if c.CheckTTL == nil {
		return def
	}
	return *c.CheckTTL
}

// DefaultTTL returns the configured TTL in seconds and whether one is set.
func (c Config) DefaultTTL() (uint32, bool) {
	if c.TTL == nil {
		return 0, false
	}
	return *c.TTL, true
}

// ReadConfig loads the config at cfgPath. An empty cfgPath selects the
// default location, which may be missing; an explicit path must exist.
// A leading "~" is expanded to the home directory.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		// An empty file decodes to io.EOF.
		if info, statErr := file.Stat(); statErr == nil && info.Size() == 0 {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("decode config %s: %w", resolvedPath, err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return DefaultPath()
	}
	expanded, err := homedir.Expand(cfgPath)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	info, err := os.Stat(expanded)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return expanded, nil
}

// DefaultPath returns ~/.dxc/config.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".dxc", "config.yaml"), nil
}
