package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmbeddedDefaults(t *testing.T) {
	t.Setenv(PortableDataDirEnv, "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8710", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Empty(t, cfg.Storage.DataDir)
}

func TestLoadConfig_ExternalFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \":9000\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
	// 未覆盖的键保持内置默认值
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("GARAGE_SERVER_PORT", ":7070")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestResolveDataDir_EnvWinsOverConfig(t *testing.T) {
	envDir := filepath.Join(t.TempDir(), "portable")
	t.Setenv(PortableDataDirEnv, envDir)

	cfg := &Config{}
	cfg.Storage.DataDir = t.TempDir()

	dir, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, envDir, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveDataDir_Idempotent(t *testing.T) {
	t.Setenv(PortableDataDirEnv, "")

	cfg := &Config{}
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")

	first, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	second, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDatabasePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(PortableDataDirEnv, dir)

	cfg := &Config{}
	path, err := cfg.DatabasePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "garage.db"), path)
}
