package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadKeybindingsMissingFile(t *testing.T) {
	cfg, err := LoadKeybindings(filepath.Join(t.TempDir(), "keybindings.toml"))
	require.NoError(t, err)
	require.Empty(t, cfg.Bindings)

	cfg, err = LoadKeybindings("")
	require.NoError(t, err)
	require.Empty(t, cfg.Bindings)
}

func TestLoadKeybindingsValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.toml")
	data := "version = 1\n\n[bindings]\ncalculate = [\"ctrl+r\"]\nclear = [\"ctrl+k\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadKeybindings(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.Equal(t, []string{"ctrl+r"}, cfg.Bindings["calculate"])

	r := NewKeyRegistry()
	require.NoError(t, r.ApplyActionKeys(cfg.Bindings))
	require.Equal(t, actionClear, r.Lookup("ctrl+k", scopeGrid).Action)
}

func TestLoadKeybindingsRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	_, err := LoadKeybindings(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported version 2")
	require.Contains(t, err.Error(), path)
}

func TestLoadKeybindingsSyntaxErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bindings\n"), 0o600))

	_, err := LoadKeybindings(path)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), path+": parse keybindings:"), err.Error())
}

func TestLoadKeybindingsDirectoryFails(t *testing.T) {
	_, err := LoadKeybindings(t.TempDir())
	require.Error(t, err)
}

func TestParseKeybindingsSyntaxError(t *testing.T) {
	_, err := ParseKeybindings("[bindings\n")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "parse keybindings:"), err.Error())

	cfg, err := ParseKeybindings("[bindings]\ngenerate = [\"ctrl+n\"]\n")
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
}

func TestSuggestAction(t *testing.T) {
	known := NewKeyRegistry().Actions()

	require.Equal(t, actionGenerate, suggestAction("generat", known))
	require.Equal(t, actionDismiss, suggestAction(" DISMIS ", known))
	require.Equal(t, Action(""), suggestAction("launch_rockets", known))
}
