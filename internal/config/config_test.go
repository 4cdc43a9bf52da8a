package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scripthost/internal/core/content"
	"github.com/zeusync/scripthost/internal/core/observability/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.RegionWarnings)
	assert.Equal(t, 30*time.Second, cfg.LoadTimeout)
	assert.True(t, cfg.Content().Empty())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCRIPTHOST_LOG_LEVEL", "debug")
	t.Setenv("SCRIPTHOST_CONTENT_FILES", "a.yaml,b.yaml")
	t.Setenv("SCRIPTHOST_CONTENT_DB", "content.db")
	t.Setenv("SCRIPTHOST_REGION_WARNINGS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, level)
	assert.False(t, cfg.RegionWarnings)
	assert.Equal(t, content.Source{Files: []string{"a.yaml", "b.yaml"}, Store: "content.db"}, cfg.Content())
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		t.Setenv("SCRIPTHOST_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("SCRIPTHOST_REGION_WARNINGS", "maybe")
		_, err := Load()
		assert.ErrorContains(t, err, "parse env:")
	})
	t.Run("zero timeout", func(t *testing.T) {
		t.Setenv("SCRIPTHOST_LOAD_TIMEOUT", "0s")
		_, err := Load()
		assert.Error(t, err)
	})
}
