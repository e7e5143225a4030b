package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"NESW"}, cfg.Rotate.Patterns)
	assert.Equal(t, "standard", cfg.Rotate.Basis)
	assert.False(t, cfg.Rotate.StandardVul)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrangler.yaml")
	content := `
rotate:
  patterns: ["S", "NESW"]
  basis: dealer
  standard_vul: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "NESW"}, cfg.Rotate.Patterns)
	assert.Equal(t, "dealer", cfg.Rotate.Basis)
	assert.True(t, cfg.Rotate.StandardVul)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rotate: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "explicit.yaml", ResolvePath("explicit.yaml"))

	t.Setenv(EnvConfigPath, "from-env.yaml")
	assert.Equal(t, "from-env.yaml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultFile, ResolvePath(""))
}
