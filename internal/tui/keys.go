package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Action names something the user can trigger. The string form is the name
// used in keybindings.toml.
type Action string

// Binding maps keys to an action within the listed scopes.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scopes []string
}

// KeyRegistry resolves key names to actions per scope, falling back to the
// global scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

const (
	scopeGlobal = "global"
	scopeForm   = "form"
	scopeGrid   = "grid"
	scopeModal  = "modal"
)

const (
	actionQuit      Action = "quit"
	actionGenerate  Action = "generate"
	actionCalculate Action = "calculate"
	actionClear     Action = "clear"
	actionNextField Action = "next_field"
	actionPrevField Action = "prev_field"
	actionMoveUp    Action = "move_up"
	actionMoveDown  Action = "move_down"
	actionMoveLeft  Action = "move_left"
	actionMoveRight Action = "move_right"
	actionDismiss   Action = "dismiss"
)

// NewKeyRegistry returns the default bindings for every scope.
func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	// Printable keys belong to the inputs, so every action sits on a
	// control or navigation key.
	reg(scopeGlobal, actionGenerate, []string{"ctrl+g"}, "generate")
	reg(scopeGlobal, actionCalculate, []string{"ctrl+x"}, "calculate")
	reg(scopeGlobal, actionClear, []string{"ctrl+l"}, "clear")
	reg(scopeGlobal, actionNextField, []string{"tab"}, "next field")
	reg(scopeGlobal, actionPrevField, []string{"shift+tab"}, "prev field")
	reg(scopeGlobal, actionQuit, []string{"ctrl+c", "ctrl+q"}, "quit")

	reg(scopeForm, actionGenerate, []string{"enter"}, "generate")
	reg(scopeForm, actionNextField, []string{"tab", "down"}, "next field")
	reg(scopeForm, actionPrevField, []string{"shift+tab", "up"}, "prev field")
	reg(scopeForm, actionClear, []string{"ctrl+l"}, "clear")
	reg(scopeForm, actionQuit, []string{"ctrl+c", "ctrl+q"}, "quit")

	reg(scopeGrid, actionCalculate, []string{"enter"}, "calculate")
	reg(scopeGrid, actionMoveUp, []string{"up"}, "up")
	reg(scopeGrid, actionMoveDown, []string{"down"}, "down")
	reg(scopeGrid, actionMoveLeft, []string{"left"}, "left")
	reg(scopeGrid, actionMoveRight, []string{"right"}, "right")
	reg(scopeGrid, actionNextField, []string{"tab"}, "next cell")
	reg(scopeGrid, actionGenerate, []string{"ctrl+g"}, "regenerate")
	reg(scopeGrid, actionClear, []string{"ctrl+l"}, "clear")
	reg(scopeGrid, actionQuit, []string{"ctrl+c", "ctrl+q"}, "quit")

	reg(scopeModal, actionDismiss, []string{"enter", "esc"}, "dismiss")

	return r
}

// Register adds b to each of its scopes. A scope that already binds any of
// b's keys keeps its existing binding and ignores b.
func (r *KeyRegistry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" || len(b.Keys) == 0 {
			continue
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

// BindingsForScope returns copies of scope's bindings in registration order.
func (r *KeyRegistry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, then in the global scope.
// The modal scope does not fall back: a blocking notification swallows
// every other key.
func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != scopeGlobal && scope != scopeModal {
		return r.lookupInScope(keyName, scopeGlobal)
	}
	return nil
}

// HelpBindings converts scope's bindings for footer help, showing the first
// key of each.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// Actions returns every action registered in any scope, sorted.
func (r *KeyRegistry) Actions() []Action {
	seen := make(map[Action]bool)
	var out []Action
	for _, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			if !seen[b.Action] {
				seen[b.Action] = true
				out = append(out, b.Action)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ApplyActionKeys rebinds every occurrence of each action, in all scopes, to
// the given keys. Conflicts inside a scope are rejected.
func (r *KeyRegistry) ApplyActionKeys(actionKeys map[string][]string) error {
	if r == nil || len(actionKeys) == 0 {
		return nil
	}
	names := make([]string, 0, len(actionKeys))
	for name := range actionKeys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action := Action(strings.TrimSpace(name))
		keys := normalizeKeyList(actionKeys[name])
		if len(keys) == 0 {
			return fmt.Errorf("keybinding %q: keys are required", action)
		}
		found := false
		for _, bindings := range r.bindingsByScope {
			for _, b := range bindings {
				if b.Action == action {
					b.Keys = keys
					found = true
				}
			}
		}
		if !found {
			return unknownActionError(string(action), r.Actions())
		}
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("keybinding conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

func (r *KeyRegistry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *KeyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func (r *KeyRegistry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "escape", "esc")
	return s
}
