package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func TestLoadMergedWithoutProfile(t *testing.T) {
	store := Store{Root: t.TempDir()}

	cfg, used, err := LoadMerged(Options{Store: &store})
	require.NoError(t, err)
	require.Equal(t, "(default config in memory)", used)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, "https://pokemondb.net/sprites/", cfg.BaseURL)
	require.Equal(t, "https://img.pokemondb.net", cfg.ImageHost)
	require.Equal(t, "gen7_shiny_links_COMPLETE_FINAL.txt", cfg.Output)
	require.Equal(t, 10, cfg.TimeoutSeconds)
	require.Equal(t, []string{"wishiwashi"}, cfg.Exclude)
}

func TestLoadMergedPrecedence(t *testing.T) {
	store := Store{Root: t.TempDir()}

	path, err := store.InitDefault()
	require.NoError(t, err)

	yaml := "output: out/links.txt\nbase_url: http://localhost:8080/sprites\ntimeout_seconds: 3\nexclude: [Meltan]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, used, err := LoadMerged(Options{Store: &store, TimeoutSeconds: 7, Debug: true})
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "out/links.txt", cfg.Output)
	require.Equal(t, "http://localhost:8080/sprites/", cfg.BaseURL)
	require.Equal(t, "https://img.pokemondb.net", cfg.ImageHost)
	require.Equal(t, 7, cfg.TimeoutSeconds)
	require.Equal(t, []string{"meltan"}, cfg.Exclude)
	require.True(t, cfg.Debug)

	cfg, used, err = LoadMerged(Options{Store: &store, IgnoreConfig: true})
	require.NoError(t, err)
	require.Equal(t, "(ignored config)", used)
	require.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadMergedBrokenProfile(t *testing.T) {
	store := Store{Root: t.TempDir()}
	path, err := store.InitDefault()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("output: [unterminated"), 0644))

	_, _, err = LoadMerged(Options{Store: &store})
	require.Error(t, err)
}

func TestStoreLifecycle(t *testing.T) {
	store := Store{Root: t.TempDir()}

	_, err := store.CurrentLabel()
	require.True(t, errors.Is(err, ErrNoConfig))

	_, err = store.InitDefault()
	require.NoError(t, err)

	p, err := store.Create("fast")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(store.Root, "configs", "fast.yaml"), p)

	_, err = store.Create("fast")
	require.Error(t, err)

	require.NoError(t, store.Switch("fast"))
	label, err := store.CurrentLabel()
	require.NoError(t, err)
	require.Equal(t, "fast", label)

	require.NoError(t, store.Rename("fast", "quick"))
	label, _ = store.CurrentLabel()
	require.Equal(t, "quick", label)

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Default", list[0].Label)
	require.False(t, list[0].Active)
	require.Equal(t, "quick", list[1].Label)
	require.True(t, list[1].Active)

	require.Error(t, store.Remove(DefaultLabel))
	require.Error(t, store.Switch("missing"))

	require.NoError(t, store.Remove("quick"))
	label, _ = store.CurrentLabel()
	require.Equal(t, DefaultLabel, label)

	_, err = store.PathByLabel("quick")
	require.Error(t, err)
}

func TestConfigRoot(t *testing.T) {
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	xdg.Reload()
	defer xdg.Reload()
	require.Equal(t, filepath.Join("/tmp/xdg", "shinydex"), ConfigRoot())

	t.Setenv("APPDATA", "/tmp/appdata")
	require.Equal(t, filepath.Join("/tmp/appdata", "shinydex"), ConfigRoot())
}

func TestRemoveActiveWithoutDefault(t *testing.T) {
	store := Store{Root: t.TempDir()}

	_, err := store.Create("fast")
	require.NoError(t, err)
	require.NoError(t, store.Switch("fast"))

	require.NoError(t, store.Remove("fast"))

	_, err = os.Stat(store.PathFor("fast"))
	require.True(t, os.IsNotExist(err))

	_, err = store.CurrentLabel()
	require.True(t, errors.Is(err, ErrNoConfig))

	_, used, err := LoadMerged(Options{Store: &store})
	require.NoError(t, err)
	require.Equal(t, "(default config in memory)", used)
}
