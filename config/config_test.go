package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: devconnector
  log:
    level: debug
http:
  port: 8080
secretKey:
  access: from-yaml
auth:
  bcryptCost: 4
  tokenTTL: 1h
github:
  clientId: gh-id
`

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
}

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, testYAML)
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "devconnector", cfg.Env.ServiceName)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.GitHub)
	assert.Equal(t, "gh-id", cfg.GitHub.ClientID)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 360000*time.Second, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, 5, cfg.GitHub.PerPage)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "node.js", cfg.GitHub.UserAgent)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.False(t, cfg.Migration.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.PoolMonitor.Interval)
	assert.Equal(t, 50*time.Millisecond, cfg.PoolMonitor.WarnAfter)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:        &AuthConfig{BcryptCost: 12, TokenTTL: time.Minute},
		GitHub:      &GitHubConfig{BaseURL: "http://github.local", PerPage: 10},
		PoolMonitor: &PoolMonitorConfig{Interval: time.Minute},
	}
	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "http://github.local", cfg.GitHub.BaseURL)
	assert.Equal(t, 10, cfg.GitHub.PerPage)
	assert.Equal(t, time.Minute, cfg.PoolMonitor.Interval)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, loadDotEnv(filepath.Join(dir, "absent.env")))
	})

	t.Run("exports variables without overriding the environment", func(t *testing.T) {
		path := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(path, []byte("DEVCONNECTOR_DOTENV_A=file\nDEVCONNECTOR_DOTENV_B=file\n"), 0o600))
		t.Setenv("DEVCONNECTOR_DOTENV_B", "env")
		t.Cleanup(func() { _ = os.Unsetenv("DEVCONNECTOR_DOTENV_A") })

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "file", os.Getenv("DEVCONNECTOR_DOTENV_A"))
		assert.Equal(t, "env", os.Getenv("DEVCONNECTOR_DOTENV_B"))
	})
}
