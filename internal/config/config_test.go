package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHORTY_LOG_FILE", "/tmp/shorty-test.log")

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "/s", cfg.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/tmp/shorty-test.log", cfg.LogFile)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SHORTY_BASE_URL", "https://shorty.example")
	t.Setenv("SHORTY_ENDPOINT", "/api/s")
	t.Setenv("SHORTY_TIMEOUT", "5s")
	t.Setenv("SHORTY_LOG_LEVEL", "debug")

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://shorty.example", cfg.BaseURL)
	assert.Equal(t, "/api/s", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NotEmpty(t, cfg.LogFile, "falls back to a default log file")
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SHORTY_BASE_URL", "https://from-env.example")

	cfg, err := Load(newFlagSet(), []string{"-b", "https://from-flag.example", "-l", "warn", "-log-file", "/tmp/x.log"})
	require.NoError(t, err)
	assert.Equal(t, "https://from-flag.example", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
}

func TestLoad_SubcommandFlags(t *testing.T) {
	fs := newFlagSet()
	url := fs.String("url", "", "url to shorten")

	_, err := Load(fs, []string{"--url", "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", *url)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "base url", args: []string{"-b", "not a url"}},
		{name: "log level", args: []string{"-l", "loud"}},
		{name: "endpoint", env: map[string]string{"SHORTY_ENDPOINT": "s"}},
		{name: "timeout", env: map[string]string{"SHORTY_TIMEOUT": "soon"}},
		{name: "unknown flag", args: []string{"-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(newFlagSet(), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHORTY_ENDPOINT=/from-dotenv\n"), 0o600))
	chdir(t, dir)
	t.Setenv("SHORTY_ENDPOINT", "")
	require.NoError(t, os.Unsetenv("SHORTY_ENDPOINT"))

	cfg, err := Load(newFlagSet(), []string{"-log-file", filepath.Join(dir, "x.log")})
	require.NoError(t, err)
	assert.Equal(t, "/from-dotenv", cfg.Endpoint)
}

func TestLoad_NoDotEnv(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(newFlagSet(), nil)
	assert.NoError(t, err, "a missing .env is fine")
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NOT-A-KEY=1\n"), 0o600))
	chdir(t, dir)

	_, err := Load(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load .env")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
