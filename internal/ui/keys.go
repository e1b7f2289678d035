package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds Viewing-mode actions to keys. The prompt modes do not consult
// it.
type KeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	New       key.Binding
	Delete    key.Binding
	Attach    key.Binding
	Rename    key.Binding
	NewWindow key.Binding
	Detach    key.Binding
	Refresh   key.Binding
	Up        key.Binding
	Down      key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      binding("quit", "q"),
		Help:      binding("help", "h"),
		New:       binding("new session", "n"),
		Delete:    binding("delete session", "d"),
		Attach:    binding("attach", "a", "enter"),
		Rename:    binding("rename", "r"),
		NewWindow: binding("new window", "w"),
		Detach:    binding("detach", "x"),
		Refresh:   binding("refresh", "R"),
		Up:        binding("navigate", "up", "k"),
		Down:      binding("navigate", "down", "j"),
	}
}

func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(displayKey(keys[0]), desc))
}

func displayKey(k string) string {
	switch k {
	case "enter":
		return "Enter"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "esc":
		return "Esc"
	case " ":
		return "Space"
	default:
		return k
	}
}

// actions maps configuration names to bindings.
func (k *KeyMap) actions() map[string]*key.Binding {
	return map[string]*key.Binding{
		"quit":       &k.Quit,
		"help":       &k.Help,
		"new":        &k.New,
		"delete":     &k.Delete,
		"attach":     &k.Attach,
		"rename":     &k.Rename,
		"new_window": &k.NewWindow,
		"detach":     &k.Detach,
		"refresh":    &k.Refresh,
		"up":         &k.Up,
		"down":       &k.Down,
	}
}

// KeyActions lists the action names accepted by Apply.
func KeyActions() []string {
	var k KeyMap
	names := make([]string, 0, 11)
	for name := range k.actions() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply replaces the keys of the named actions. Unknown actions and empty key
// lists are rejected without modifying the map.
func (k *KeyMap) Apply(overrides map[string][]string) error {
	actions := k.actions()
	for name, keys := range overrides {
		if _, ok := actions[name]; !ok {
			return fmt.Errorf("unknown key action %q (valid: %s)", name, strings.Join(KeyActions(), ", "))
		}
		if len(keys) == 0 {
			return fmt.Errorf("key action %q has no keys", name)
		}
		for _, value := range keys {
			if strings.TrimSpace(value) == "" && value != " " {
				return fmt.Errorf("key action %q has a blank key", name)
			}
		}
	}
	for name, keys := range overrides {
		b := actions[name]
		desc := b.Help().Desc
		*b = binding(desc, keys...)
	}
	return nil
}

// Legend renders the command summary shown by the help action.
func (k KeyMap) Legend() string {
	parts := make([]string, 0, 10)
	for _, b := range []key.Binding{k.Quit, k.New, k.Delete, k.Attach, k.Rename, k.NewWindow, k.Detach, k.Refresh} {
		parts = append(parts, helpEntry(b))
	}
	parts = append(parts, k.Up.Help().Key+k.Down.Help().Key+"="+k.Up.Help().Desc)
	if attach := k.Attach.Keys(); len(attach) > 1 {
		for _, extra := range attach[1:] {
			parts = append(parts, displayKey(extra)+"="+k.Attach.Help().Desc)
		}
	}
	return "Commands: " + strings.Join(parts, ", ")
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + "=" + h.Desc
}
