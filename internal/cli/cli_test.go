package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/board-service/internal/config"
	"github.com/maxviazov/board-service/internal/repository"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWindowCmd(t *testing.T) {
	out, err := run(t, "window", "--total", "20", "--current", "10")
	require.NoError(t, err)
	assert.Equal(t, "1 … 9 [10] 11 … 20", strings.TrimSpace(out))

	out, err = run(t, "window", "--total", "5", "--current", "9")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 [5]", strings.TrimSpace(out))

	out, err = run(t, "window", "--total", "9", "--current", "2", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"page","page":1},{"type":"page","page":2},{"type":"page","page":3},{"type":"ellipsis"},{"type":"page","page":9}]`, out)

	_, err = run(t, "window", "--total", "0")
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMigrateCmd_MemoryDriverIsNoop(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: memory\n")
	out, err := run(t, "migrate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to migrate")
}

func TestServeCmd_BadConfig(t *testing.T) {
	_, err := run(t, "serve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOpenStorage_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "memory"}}
	posts, pinger, closeFn, err := openStorage(context.Background(), cfg, zerolog.New(io.Discard))
	require.NoError(t, err)
	defer closeFn()

	assert.NoError(t, pinger.Ping(context.Background()))
	res, err := posts.List(context.Background(), repository.PostFilter{}, repository.Page{Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, 9, res.Total)

	cfg.Storage.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, _, _, err = openStorage(context.Background(), cfg, zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestNewLogger_InheritsAppIdentity(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Name: "board", Version: "9.9.9", Env: "test"}}
	_, err := newLogger(cfg)
	require.NoError(t, err)
	assert.Empty(t, cfg.Logger.ServiceName, "the loaded config is not mutated")
}
