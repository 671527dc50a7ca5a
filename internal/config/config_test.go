package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "log", cfg.QueueDriver)
	assert.Equal(t, 2*time.Second, cfg.ProfileTimeout)
	assert.Equal(t, 100, cfg.NotifyBuffer)
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("QUEUE_DRIVER=redis\nREDIS_DB=3\n"), 0o600))
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Cleanup(func() {
		os.Unsetenv("QUEUE_DRIVER")
		os.Unsetenv("REDIS_DB")
	})

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.QueueDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("QUEUE_DRIVER", "kafka")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
