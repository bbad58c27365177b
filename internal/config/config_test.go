package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbase/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, domain.CategoryAll, cfg.StartCategory())
	assert.Equal(t, 3, cfg.Columns())
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Empty(t, cfg.CatalogPath)
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, created, err := Load(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults should be written to disk")

	again, created, err := Load(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, cfg, again)
}

func TestParseOverridesDefaults(t *testing.T) {
	data := `
log_level = "debug"
catalog_path = "/tmp/articles.yaml"

[ui]
default_category = "Безопасность"
max_columns = 2
`
	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "/tmp/articles.yaml", cfg.CatalogPath)
	assert.Equal(t, domain.CategorySecurity, cfg.StartCategory())
	assert.Equal(t, 2, cfg.Columns())
	assert.True(t, cfg.UI.AltScreen, "unset keys keep their defaults")
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown category", "[ui]\ndefault_category = \"Кулинария\"\n"},
		{"bad log level", "log_level = \"verbose\"\n"},
		{"negative columns", "[ui]\nmax_columns = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("log_level = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	cfg.UI.MaxColumns = 1
	cfg.UI.DefaultCategory = string(domain.CategoryDocumentation)

	require.NoError(t, Save(cfg, path))

	loaded, created, err := Load(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, cfg, loaded)
}

func TestColumnsFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.MaxColumns = 0
	assert.Equal(t, 1, cfg.Columns())
}

func TestLogPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultLogPath(), cfg.LogPath())

	cfg.LogFile = "/tmp/kbase.log"
	assert.Equal(t, "/tmp/kbase.log", cfg.LogPath())
}
