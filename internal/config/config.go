// Package config loads the optional YAML settings file for the spi shell.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"fortio.org/log"
	"gopkg.in/yaml.v3"

	"spi/internal/interp"
)

const (
	EnvVar      = "SPI_CONFIG"
	defaultFile = ".spi.yaml"
)

type Config struct {
	Prompt      string `yaml:"prompt"`
	Mode        string `yaml:"mode"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Prompt:      "spi> ",
		Mode:        "auto",
		Color:       true,
		HistoryFile: ".spi_history",
		LogLevel:    "info",
	}
}

// DefaultPath returns $SPI_CONFIG, or ~/.spi.yaml when it is unset.
func DefaultPath() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultFile)
}

// Load reads path over the defaults. When explicit is false a missing file
// is not an error.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return decode(file, path)
}

func decode(r io.Reader, name string) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := interp.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := log.ValidateLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParsedMode returns Mode as an interp.Mode.
func (c Config) ParsedMode() (interp.Mode, error) {
	return interp.ParseMode(c.Mode)
}

// HistoryPath resolves a relative history file against the home directory.
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}
