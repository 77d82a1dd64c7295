package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".salesdesk")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(body), 0600))
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	err := Default().Save()
	require.NoError(t, err)

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	withHome(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadOrDefaultFallsBackWhenMissing(t *testing.T) {
	home := withHome(t)

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".salesdesk", "salesdesk.db"), cfg.DBPath)
	assert.Equal(t, "02/01/2006", cfg.DateLayout)
	require.NotNil(t, cfg.Decimals)
	assert.Equal(t, 2, *cfg.Decimals)
}

func TestLoadOrDefaultSurfacesInsecureFile(t *testing.T) {
	withHome(t)
	require.NoError(t, Default().Save())
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := LoadOrDefault()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	decimals := 3
	original := Config{
		DBPath:     "/tmp/sales.db",
		DateLayout: "2006/01/02",
		Decimals:   &decimals,
		LogFile:    "/tmp/sales.log",
		LogLevel:   "debug",
		VimKeys:    true,
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(t, original.DBPath, loaded.DBPath)
	assert.Equal(t, original.DateLayout, loaded.DateLayout)
	require.NotNil(t, loaded.Decimals)
	assert.Equal(t, 3, *loaded.Decimals)
	assert.Equal(t, original.LogFile, loaded.LogFile)
	assert.Equal(t, original.LogLevel, loaded.LogLevel)
	assert.Equal(t, original.VimKeys, loaded.VimKeys)
}

func TestSaveConfigOverwritesExisting(t *testing.T) {
	withHome(t)

	require.NoError(t, (&Config{DBPath: "/tmp/one.db"}).Save())
	require.NoError(t, (&Config{DBPath: "/tmp/two.db"}).Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/two.db", loaded.DBPath)
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "02/01/2006", loaded.DateLayout)
	assert.Equal(t, "info", loaded.LogLevel)
	assert.Equal(t, 2, *loaded.Decimals)
}

func TestLoadConfigKeepsExplicitZeroDecimals(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "decimals: 0\n")

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded.Decimals)
	assert.Equal(t, 0, *loaded.Decimals)
	assert.Equal(t, 0, loaded.Format().Decimals)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "invalid: yaml: content:")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadDecimals(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "decimals: 9\n")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decimals")
}

func TestLoadConfigRejectsLossyDateLayout(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "date_layout: \"01/2006\"\n")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date_layout")
}

func TestLoadConfigRejectsUntypableDateLayout(t *testing.T) {
	for _, layout := range []string{"2006-01-02", "02 Jan 2006"} {
		t.Run(layout, func(t *testing.T) {
			home := withHome(t)
			writeConfig(t, home, "date_layout: \""+layout+"\"\n")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "date fields only accept")
		})
	}
}

func TestLoadConfigAcceptsSlashedIsoLayout(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "date_layout: \"2006/01/02\"\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "2006/01/02", cfg.DateLayout)
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	withHome(t)
	require.NoError(t, Default().Save())

	err := os.Chmod(Path(), 0644)
	require.NoError(t, err)

	_, err = Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestFormatUsesConfiguredLayout(t *testing.T) {
	decimals := 1
	cfg := Config{DateLayout: "2006/01/02", Decimals: &decimals}

	f := cfg.Format()
	assert.Equal(t, "2006/01/02", f.DateLayout)
	assert.Equal(t, 1, f.Decimals)
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".salesdesk")
	assert.Contains(t, path, "config")
}
