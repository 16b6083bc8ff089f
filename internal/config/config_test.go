package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("MATRIXCALC_CONFIG", "")
	return dir
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Matrix.DefaultDimension)
	require.Equal(t, 12, cfg.Matrix.MaxDimension)
	require.Equal(t, 6, cfg.UI.CellWidth)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(dir, "state", "matrixcalc", "matrixcalc.log"), cfg.Log.Path)
	require.Equal(t, filepath.Join(dir, "config", "matrixcalc", "keybindings.toml"), cfg.UI.KeybindingsPath)
}

func TestLoadReadsTOMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	data := []byte(`[matrix]
default_dimension = 2
max_dimension = 8

[log]
level = "DEBUG"

[ui]
cell_width = 10
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Matrix.DefaultDimension)
	require.Equal(t, 8, cfg.Matrix.MaxDimension)
	require.Equal(t, 10, cfg.UI.CellWidth)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromUserConfigDir(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "matrixcalc")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[matrix]\ndefault_dimension = 4\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Matrix.DefaultDimension)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("MATRIXCALC_MATRIX_DEFAULT_DIMENSION", "5")
	t.Setenv("MATRIXCALC_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Matrix.DefaultDimension)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadNormalizesOutOfRangeValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	data := []byte(`[matrix]
default_dimension = 40
max_dimension = 6

[ui]
cell_width = 1
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Matrix.DefaultDimension)
	require.Equal(t, 6, cfg.UI.CellWidth)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
}

func TestLoadBrokenFileFails(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[matrix\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
