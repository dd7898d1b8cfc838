// Package config loads runner settings from a YAML file, an optional .env
// file and ADVENT_* environment variables, in that order of precedence
// (environment wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/puzzle"
)

// Environment variables recognised by Load.
const (
	EnvConfig   = "ADVENT_CONFIG"
	EnvInputDir = "ADVENT_INPUT_DIR"
	EnvTiming   = "ADVENT_TIMING"
	EnvLogLevel = "ADVENT_LOG_LEVEL"
)

// DefaultPath is the config file read when neither a path nor
// ADVENT_CONFIG is given. Its absence is not an error.
const DefaultPath = "advent.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the runner configuration.
type Config struct {
	// InputDir holds puzzle inputs laid out as <dir>/<year>/<dd>.txt.
	InputDir string `yaml:"input_dir"`

	// Timing prints per-part elapsed time and a total.
	Timing bool `yaml:"timing"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Answers maps "YYYY/DD" to the known answers of that day.
	Answers map[string]puzzle.Expected `yaml:"answers"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		InputDir: "inputs",
		LogLevel: "info",
		Answers:  map[string]puzzle.Expected{},
	}
}

// Load builds a Config.
//
//  1. .env in the working directory is loaded into the process environment
//     when present (existing variables are not overwritten).
//  2. The YAML file at path, $ADVENT_CONFIG or DefaultPath is decoded over
//     the defaults. An explicitly named file must exist.
//  3. ADVENT_INPUT_DIR, ADVENT_TIMING and ADVENT_LOG_LEVEL override fields.
//  4. The result is validated.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: loading .env: %w", err)
	}

	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path, explicit = DefaultPath, false
	}
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if c.Answers == nil {
		c.Answers = map[string]puzzle.Expected{}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvInputDir); ok && v != "" {
		c.InputDir = v
	}
	if v, ok := os.LookupEnv(EnvTiming); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvTiming, v)
		}
		c.Timing = b
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// InputPath returns the conventional input file for a puzzle.
func (c *Config) InputPath(year, day int) string {
	return filepath.Join(c.InputDir, strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
}

// Expected returns the known answers for a puzzle.
func (c *Config) Expected(year, day int) (puzzle.Expected, bool) {
	exp, ok := c.Answers[puzzle.Key(year, day)]
	return exp, ok
}

// NewLogger builds a console logger at the configured level.
// verbose forces debug level.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
