package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

// KeybindingsFile is the on-disk shape of keybindings.toml:
//
//	version = 1
//
//	[bindings]
//	calculate = ["ctrl+r"]
type KeybindingsFile struct {
	Version  int                 `toml:"version"`
	Bindings map[string][]string `toml:"bindings"`
}

// maxSuggestDistance bounds how far a typo may be from a real action name
// before we stop suggesting it.
const maxSuggestDistance = 3

// LoadKeybindings reads and decodes path. A missing file yields an empty config.
func LoadKeybindings(path string) (KeybindingsFile, error) {
	if strings.TrimSpace(path) == "" {
		return KeybindingsFile{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return KeybindingsFile{}, nil
		}
		return KeybindingsFile{}, fmt.Errorf("read keybindings: %w", err)
	}
	cfg, err := ParseKeybindings(string(data))
	if err != nil {
		return KeybindingsFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseKeybindings decodes raw TOML. A missing version means version 1.
func ParseKeybindings(data string) (KeybindingsFile, error) {
	var cfg KeybindingsFile
	if _, err := toml.Decode(data, &cfg); err != nil {
		return KeybindingsFile{}, fmt.Errorf("parse keybindings: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return KeybindingsFile{}, fmt.Errorf("keybindings: unsupported version %d", cfg.Version)
	}
	return cfg, nil
}

func unknownActionError(name string, known []Action) error {
	if s := suggestAction(name, known); s != "" {
		return fmt.Errorf("keybinding %q: unknown action (did you mean %q?)", name, s)
	}
	return fmt.Errorf("keybinding %q: unknown action", name)
}

func suggestAction(name string, known []Action) Action {
	name = strings.ToLower(strings.TrimSpace(name))
	best := Action("")
	bestDist := maxSuggestDistance + 1
	for _, a := range known {
		d := levenshtein.ComputeDistance(name, string(a))
		if d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}
