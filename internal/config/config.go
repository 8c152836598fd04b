// Package config resolves run settings from defaults, an optional YAML file,
// a .env file and the process environment. Command-line flags are applied on
// top by main.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/olehluchkiv/zooreport/internal/logging"
)

const (
	DefaultNamesFile    = "animalNames.txt"
	DefaultArrivalsFile = "arrivingAnimals.txt"
	DefaultReportFile   = "newAnimals.txt"
	DefaultLogFile      = "logs/zooreport.log"
	DefaultLogLevel     = "info"
)

var (
	ErrReadingConfig = errors.New("reading config file")
	ErrParsingConfig = errors.New("parsing config")
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the settings for one run.
type Config struct {
	NamesFile    string `yaml:"names_file" env:"ZOO_NAMES_FILE"`
	ArrivalsFile string `yaml:"arrivals_file" env:"ZOO_ARRIVALS_FILE"`
	ReportFile   string `yaml:"report_file" env:"ZOO_REPORT_FILE"`
	LogFile      string `yaml:"log_file" env:"ZOO_LOG_FILE"`
	LogLevel     string `yaml:"log_level" env:"ZOO_LOG_LEVEL"`
	Seed         uint64 `yaml:"seed" env:"ZOO_SEED"` // 0 picks a fresh random seed

	// Warnings lists non-fatal problems met while loading, for the caller to log.
	Warnings []string `yaml:"-"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		NamesFile:    DefaultNamesFile,
		ArrivalsFile: DefaultArrivalsFile,
		ReportFile:   DefaultReportFile,
		LogFile:      DefaultLogFile,
		LogLevel:     DefaultLogLevel,
	}
}

// Load layers the YAML file at path (skipped when path is empty) over the
// defaults, then the environment over that. Variables from envFiles (".env"
// when none are given) only fill in keys the process environment lacks. A
// missing or malformed default .env is skipped; the latter is recorded in
// Config.Warnings. Load does not validate: callers apply their own overrides
// first and then call Validate.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	environ, warning, err := environment(envFiles)
	if warning != "" {
		cfg.Warnings = append(cfg.Warnings, warning)
	}
	if err != nil {
		return cfg, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingConfig, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %w", ErrParsingConfig, path, err)
	}
	return nil
}

func environment(envFiles []string) (map[string]string, string, error) {
	environ := env.ToMap(os.Environ())

	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	dotenv, err := godotenv.Read(files...)
	if err != nil {
		if len(envFiles) == 0 {
			if errors.Is(err, fs.ErrNotExist) {
				return environ, "", nil
			}
			return environ, fmt.Sprintf("ignoring .env: %v", err), nil
		}
		return nil, "", fmt.Errorf("%w: %w", ErrReadingConfig, err)
	}

	for k, v := range dotenv {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}
	return environ, "", nil
}

// Validate rejects settings a run cannot start with.
func (c Config) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"names_file", c.NamesFile},
		{"arrivals_file", c.ArrivalsFile},
		{"report_file", c.ReportFile},
	} {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, f.name))
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}
