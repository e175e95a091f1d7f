package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Server.Port, cfg.Server.Port)
	assert.Equal(t, def.MySQL.DSN, cfg.MySQL.DSN)
	assert.Equal(t, float64(0), cfg.Tax.Rate)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := []byte("server:\n  port: 9000\ntax:\n  rate: 0.21\nredis:\n  list_cache_ttl_seconds: 60\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 0.21, cfg.Tax.Rate)
	assert.Equal(t, 60, cfg.Redis.ListCacheTTLSeconds)
	// 未配置的项回落到默认值
	assert.Equal(t, DefaultConfig().RabbitMQ.URL, cfg.RabbitMQ.URL)
}

func TestLoadRejectsNegativeTaxRate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tax:\n  rate: -0.1\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:5000", ServerConfig{Port: 5000}.Addr())
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: 8080}.Addr())
}
