// Package shortcut converts keybinding chords such as "ctrl+alt+p" into fyne shortcuts.
package shortcut

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var namedKeys = map[string]fyne.KeyName{
	"space":     fyne.KeySpace,
	"enter":     fyne.KeyReturn,
	"return":    fyne.KeyReturn,
	"escape":    fyne.KeyEscape,
	"esc":       fyne.KeyEscape,
	"tab":       fyne.KeyTab,
	"backspace": fyne.KeyBackspace,
	"delete":    fyne.KeyDelete,
	"home":      fyne.KeyHome,
	"end":       fyne.KeyEnd,
	"up":        fyne.KeyUp,
	"down":      fyne.KeyDown,
	"left":      fyne.KeyLeft,
	"right":     fyne.KeyRight,
}

var modifiers = map[string]fyne.KeyModifier{
	"ctrl":    fyne.KeyModifierControl,
	"control": fyne.KeyModifierControl,
	"alt":     fyne.KeyModifierAlt,
	"option":  fyne.KeyModifierAlt,
	"shift":   fyne.KeyModifierShift,
	"super":   fyne.KeyModifierSuper,
	"cmd":     fyne.KeyModifierSuper,
	"meta":    fyne.KeyModifierSuper,
}

// Parse reads a chord of '+'-separated modifiers followed by one key.
// At least one modifier is required.
func Parse(chord string) (*desktop.CustomShortcut, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(chord)), "+")
	if len(parts) < 2 {
		return nil, fmt.Errorf("parse chord %q: need a modifier and a key", chord)
	}

	var modifier fyne.KeyModifier
	for _, part := range parts[:len(parts)-1] {
		value, ok := modifiers[strings.TrimSpace(part)]
		if !ok {
			return nil, fmt.Errorf("parse chord %q: unknown modifier %q", chord, part)
		}
		modifier |= value
	}

	key, err := parseKey(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return nil, fmt.Errorf("parse chord %q: %w", chord, err)
	}
	return &desktop.CustomShortcut{KeyName: key, Modifier: modifier}, nil
}

func parseKey(key string) (fyne.KeyName, error) {
	if named, ok := namedKeys[key]; ok {
		return named, nil
	}
	if len(key) == 1 && (key[0] >= 'a' && key[0] <= 'z' || key[0] >= '0' && key[0] <= '9') {
		return fyne.KeyName(strings.ToUpper(key)), nil
	}
	if len(key) >= 2 && len(key) <= 3 && key[0] == 'f' {
		var number int
		if _, err := fmt.Sscanf(key[1:], "%d", &number); err == nil && number >= 1 && number <= 12 {
			return fyne.KeyName(fmt.Sprintf("F%d", number)), nil
		}
	}
	return "", fmt.Errorf("unknown key %q", key)
}
