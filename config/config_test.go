package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Timing)
	assert.Empty(t, cfg.Answers)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
input_dir: data
timing: true
log_level: debug
answers:
  "2023/01":
    part1: 142
    part2: 281
  "2023/25":
    part1: 54
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.InputDir)
	assert.True(t, cfg.Timing)
	assert.Equal(t, "debug", cfg.LogLevel)

	exp, ok := cfg.Expected(2023, 1)
	require.True(t, ok)
	require.NotNil(t, exp.Part1)
	assert.Equal(t, 142, *exp.Part1)
	assert.Equal(t, 281, *exp.Part2)

	exp, ok = cfg.Expected(2023, 25)
	require.True(t, ok)
	assert.Nil(t, exp.Part2)

	_, ok = cfg.Expected(2024, 1)
	assert.False(t, ok)

	assert.Equal(t, filepath.Join("data", "2023", "07.txt"), cfg.InputPath(2023, 7))
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "input_dir: data\n")
	t.Setenv(EnvInputDir, "elsewhere")
	t.Setenv(EnvTiming, "1")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.InputDir)
	assert.True(t, cfg.Timing)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	path := writeFile(t, "timing: true\n")
	t.Setenv(EnvConfig, path)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Timing)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "timing: [oops\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "log_level: loud\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv(EnvTiming, "sometimes")
	_, err = Load(writeFile(t, "timing: false\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	l, err := cfg.NewLogger(true)
	require.NoError(t, err)
	assert.NotNil(t, l)

	cfg.LogLevel = "nope"
	_, err = cfg.NewLogger(false)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
