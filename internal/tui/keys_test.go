package tui

import (
	"strings"
	"testing"
)

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	gen := r.Lookup("enter", scopeForm)
	if gen == nil || gen.Action != actionGenerate {
		t.Fatalf("enter in form scope = %v, want %q", gen, actionGenerate)
	}
	calc := r.Lookup("enter", scopeGrid)
	if calc == nil || calc.Action != actionCalculate {
		t.Fatalf("enter in grid scope = %v, want %q", calc, actionCalculate)
	}

	if got := r.Lookup("left", scopeForm); got != nil {
		t.Fatalf("did not expect left binding in form scope, got %q", got.Action)
	}
}

func TestKeyRegistryGlobalFallback(t *testing.T) {
	r := NewKeyRegistry()

	got := r.Lookup("ctrl+x", scopeForm)
	if got == nil {
		t.Fatal("expected calculate to fall back to the global scope")
	}
	if got.Action != actionCalculate {
		t.Fatalf("ctrl+x action = %q, want %q", got.Action, actionCalculate)
	}
}

func TestKeyRegistryModalSwallowsGlobals(t *testing.T) {
	r := NewKeyRegistry()

	for _, k := range []string{"ctrl+c", "ctrl+x", "tab", "1"} {
		if got := r.Lookup(k, scopeModal); got != nil {
			t.Fatalf("modal scope resolved %q to %q, want nothing", k, got.Action)
		}
	}
	for _, k := range []string{"enter", "esc", "escape"} {
		got := r.Lookup(k, scopeModal)
		if got == nil || got.Action != actionDismiss {
			t.Fatalf("modal %q = %v, want dismiss", k, got)
		}
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionGenerate, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionClear, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionClear, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionGenerate {
		t.Fatalf("scope_a bindings = %+v, want only generate", a)
	}
	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionClear {
		t.Fatalf("scope_b bindings = %+v, want only clear", b)
	}
}

func TestKeyRegistryHelpBindings(t *testing.T) {
	r := NewKeyRegistry()

	help := r.HelpBindings(scopeModal)
	if len(help) != 1 {
		t.Fatalf("modal help count = %d, want 1", len(help))
	}
	entry := help[0].Help()
	if entry.Key != "enter" || entry.Desc != "dismiss" {
		t.Fatalf("modal help = %q %q, want enter dismiss", entry.Key, entry.Desc)
	}

	grid := r.HelpBindings(scopeGrid)
	if len(grid) == 0 || grid[0].Help().Desc != "calculate" {
		t.Fatalf("grid help should lead with calculate, got %+v", grid)
	}
}

func TestApplyActionKeysRebindsEveryScope(t *testing.T) {
	r := NewKeyRegistry()
	if err := r.ApplyActionKeys(map[string][]string{"calculate": {"ctrl+r"}}); err != nil {
		t.Fatalf("ApplyActionKeys: %v", err)
	}

	for _, scope := range []string{scopeGlobal, scopeGrid} {
		got := r.Lookup("ctrl+r", scope)
		if got == nil || got.Action != actionCalculate {
			t.Fatalf("ctrl+r in %s = %v, want calculate", scope, got)
		}
	}
	if got := r.Lookup("ctrl+x", scopeGrid); got != nil {
		t.Fatalf("old key still bound to %q", got.Action)
	}
	if got := r.Lookup("enter", scopeGrid); got != nil {
		t.Fatalf("enter in grid scope still bound to %q", got.Action)
	}
}

func TestApplyActionKeysRejectsConflicts(t *testing.T) {
	r := NewKeyRegistry()
	err := r.ApplyActionKeys(map[string][]string{"clear": {"tab"}})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "conflict") {
		t.Fatalf("error = %q, want conflict", err)
	}
}

func TestApplyActionKeysUnknownActionSuggests(t *testing.T) {
	r := NewKeyRegistry()
	err := r.ApplyActionKeys(map[string][]string{"calculat": {"ctrl+r"}})
	if err == nil {
		t.Fatal("expected unknown action error")
	}
	if !strings.Contains(err.Error(), `did you mean "calculate"`) {
		t.Fatalf("error = %q, want suggestion", err)
	}

	err = r.ApplyActionKeys(map[string][]string{"calculate": {" "}})
	if err != nil {
		t.Fatalf("space is a valid key: %v", err)
	}
	err = r.ApplyActionKeys(map[string][]string{"clear": {""}})
	if err == nil {
		t.Fatal("expected error for empty key list")
	}
}

func TestNormalizeKeyName(t *testing.T) {
	tests := map[string]string{
		" ":           "space",
		"Control+X":   "ctrl+x",
		"ctl+g":       "ctrl+g",
		"Return":      "enter",
		"ESCAPE":      "esc",
		"G":           "G",
		"shift + tab": "shift+tab",
	}
	for in, want := range tests {
		if got := normalizeKeyName(in); got != want {
			t.Errorf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}
