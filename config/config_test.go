package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `profile:
  path: ./config/profile.yaml
  resumePath: ./resume.pdf
database:
  dsn: file-dsn
browser:
  headless: true
  slowTiming: false
applications:
  - https://jobs.lever.co/acme/123/apply
bot:
  is_send: false
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-dsn", cfg.Database.DSN)
	assert.True(t, cfg.Browser.Headless)
	assert.False(t, cfg.Browser.SlowTiming)
	assert.Equal(t, []string{"https://jobs.lever.co/acme/123/apply"}, cfg.Applications)
}

func TestLoadConfigEnvOverridesNestedKey(t *testing.T) {
	dir := writeTestConfig(t)
	t.Setenv("DATABASE_DSN", "env-dsn")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-dsn", cfg.Database.DSN)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(t.TempDir())
	assert.Error(t, err)
}
