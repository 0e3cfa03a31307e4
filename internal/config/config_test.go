package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/board-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func clearSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("APP_POSTGRES_USER", "")
	t.Setenv("APP_POSTGRES_PASSWORD", "")
	t.Setenv("APP_POSTGRES_DB", "")
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: board-service
  version: 0.1.0
  env: test
  port: 18080
  cors_origins: ["http://localhost:5173"]

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

storage:
  driver: postgres

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5

board:
  page_size: 6
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.App.CORSOrigins)
	assert.Equal(t, "stdout", cfg.Logger.OutputTarget)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, 6, cfg.Board.PageSize)
	assert.Equal(t, 100, cfg.Board.MaxPageSize)
}

func TestConfigLoad_Defaults(t *testing.T) {
	clearSecrets(t)
	cfg, err := config.Load(writeTempConfig(t, "app:\n  name: demo\n"))
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 4, cfg.Board.PageSize)
	assert.Equal(t, 10, cfg.App.ShutdownTimeout)
}

func TestConfigLoad_EnvOverridesYAML(t *testing.T) {
	clearSecrets(t)
	t.Setenv("APP_BOARD_PAGE_SIZE", "10")
	cfg, err := config.Load(writeTempConfig(t, "board:\n  page_size: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Board.PageSize)
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	clearSecrets(t)
	_, err := config.Load(writeTempConfig(t, "storage:\n  driver: postgres\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_POSTGRES_USER")
}

func TestConfigLoad_Invalid(t *testing.T) {
	clearSecrets(t)
	cases := map[string]string{
		"unknown driver":     "storage:\n  driver: mongo\n",
		"bad env":            "app:\n  env: qa\n",
		"page size over max": "board:\n  page_size: 50\n  max_page_size: 20\n",
		"zero page size":     "board:\n  page_size: 0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeTempConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
