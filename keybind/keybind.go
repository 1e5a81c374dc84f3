// Package keybind maps terminal key events to named bindings with help text.
//
// Keys are written as "+"-joined strings such as "up", "shift+down", "ctrl+c"
// or "q". They are normalised so that "Ctrl+C", "ctrl-c" and "control+c"
// compare equal.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Help is the text shown for a binding in a help bar.
type Help struct {
	Key  string
	Desc string
}

// Keybind is a set of keys triggering one action.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Option configures a Keybind.
type Option func(*Keybind)

// New returns a binding configured by options.
func New(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys of the binding.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

// WithHelp sets the help text of the binding.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the binding disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

// Keys returns the normalised keys.
func (k Keybind) Keys() []string {
	return k.keys
}

// SetKeys replaces the keys.
func (k *Keybind) SetKeys(keys ...string) {
	k.keys = nil
	for _, key := range keys {
		if key = Normalize(key); key != "" && !slices.Contains(k.keys, key) {
			k.keys = append(k.keys, key)
		}
	}
}

// Help returns the help text.
func (k Keybind) Help() Help {
	return k.help
}

// Enabled reports whether the binding reacts to keys.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

// SetEnabled enables or disables the binding.
func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// MatchesKey reports whether the normalised key triggers the binding.
func (k Keybind) MatchesKey(key string) bool {
	return k.Enabled() && slices.Contains(k.keys, key)
}

// Matches reports whether event triggers any of the bindings.
func Matches(event *tcell.EventKey, bindings ...Keybind) bool {
	key := Key(event)
	if key == "" {
		return false
	}
	for _, k := range bindings {
		if k.MatchesKey(key) {
			return true
		}
	}
	return false
}

var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

var aliases = map[string]string{
	"control":  "ctrl",
	"option":   "alt",
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
	"ins":      "insert",
	"backtab":  "shift+tab",
}

// Normalize returns the canonical form of key: lower-case modifiers in the
// order ctrl, alt, shift, meta followed by the key name. Single characters
// keep their case unless a modifier is present. It returns "" for keys
// without a primary part.
func Normalize(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if key == "+" || key == "-" {
		return key
	}
	// "ctrl-c" style, but leave a trailing literal "-" alone.
	if i := strings.IndexByte(key, '-'); i > 0 && i < len(key)-1 && !strings.Contains(key, "+") {
		key = strings.ReplaceAll(key, "-", "+")
	}

	mods := map[string]bool{}
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name := strings.ToLower(part)
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		if strings.HasPrefix(name, "shift+") {
			mods["shift"] = true
			name = strings.TrimPrefix(name, "shift+")
		}
		switch {
		case slices.Contains(modifierOrder, name):
			mods[name] = true
		case len([]rune(part)) == 1:
			primary = part
		default:
			primary = name
		}
	}
	if primary == "" {
		return ""
	}
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}

	var b strings.Builder
	for _, mod := range modifierOrder {
		if mods[mod] {
			b.WriteString(mod)
			b.WriteByte('+')
		}
	}
	b.WriteString(primary)
	return b.String()
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

// Key returns the normalised key string of event, or "" for nil.
func Key(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary, ok := keyNames[key]
	if !ok && key == tcell.KeyRune {
		primary, ok = event.Str(), true
	}
	if !ok {
		return Normalize(event.Name())
	}

	var mods []string
	m := event.Modifiers()
	for _, pair := range []struct {
		mask tcell.ModMask
		name string
	}{
		{tcell.ModCtrl, "ctrl"},
		{tcell.ModAlt, "alt"},
		{tcell.ModShift, "shift"},
		{tcell.ModMeta, "meta"},
	} {
		if m&pair.mask != 0 {
			mods = append(mods, pair.name)
		}
	}
	// Shifted printable runes already carry the shift in the rune itself.
	if key == tcell.KeyRune {
		mods = slices.DeleteFunc(mods, func(s string) bool { return s == "shift" })
	}
	return Normalize(strings.Join(append(mods, primary), "+"))
}
