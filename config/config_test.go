package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"ytopml/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()

	assert.Equal(t, ".", cfg.TakeoutDir)
	assert.Equal(t, "YouTubeChannels.opml", cfg.Output)
	assert.Empty(t, cfg.Database)
}

func TestLoadConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ytopml.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
takeout_dir = "/exports"
output = "subs.opml"
database = "archive.db"
`), 0644))

		cfg, err := config.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "/exports", cfg.TakeoutDir)
		assert.Equal(t, "subs.opml", cfg.Output)
		assert.Equal(t, "archive.db", cfg.Database)
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ytopml.toml")
		require.NoError(t, os.WriteFile(path, []byte(`takeout_dir = "/exports"`), 0644))

		cfg, err := config.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "/exports", cfg.TakeoutDir)
		assert.Equal(t, "YouTubeChannels.opml", cfg.Output)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))

		assert.ErrorContains(t, err, "error reading config file")
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ytopml.toml")
		require.NoError(t, os.WriteFile(path, []byte("takeout_dir = ["), 0644))

		_, err := config.LoadConfig(path)

		assert.ErrorContains(t, err, "error parsing config file")
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytopml.toml")

	cfg := &config.Config{
		TakeoutDir: "/exports",
		Output:     "subs.opml",
		Database:   "archive.db",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
