// Package theme resolves and persists the visitor's light/dark display preference.
package theme

import (
	"fmt"
	"strings"
)

// Theme is the binary display preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is used when neither a stored choice nor an OS preference is available.
const Default = Light

// StorageKey is the fixed key the preference is persisted under.
const StorageKey = "theme"

// Resolution sources, reported alongside the resolved theme.
const (
	SourceStored  = "stored"
	SourceOS      = "os"
	SourceDefault = "default"
)

// Parse converts a stored or submitted value into a Theme.
func Parse(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be %q or %q", value, Light, Dark)
	}
}

// Toggle returns the opposite theme. Toggle is its own inverse.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// DocumentClass returns the class applied to the document root for t.
func (t Theme) DocumentClass() string {
	if t == Dark {
		return "dark"
	}
	return ""
}

func (t Theme) String() string {
	return string(t)
}

// Store persists the preference under StorageKey.
type Store interface {
	// Load returns the stored theme and whether one was present and valid.
	Load() (Theme, bool)
	Save(Theme) error
}

// OSPreference reports the operating system's color scheme preference.
type OSPreference interface {
	// PrefersDark returns the preference and whether it is known at all.
	PrefersDark() (dark bool, known bool)
}

// Resolution is a resolved theme together with where it came from.
type Resolution struct {
	Theme  Theme
	Source string
}

// Resolve applies the precedence: stored choice, then OS preference, then Default.
// Either argument may be nil.
func Resolve(store Store, os OSPreference) Resolution {
	if store != nil {
		if t, ok := store.Load(); ok {
			return Resolution{Theme: t, Source: SourceStored}
		}
	}

	if os != nil {
		if dark, known := os.PrefersDark(); known {
			if dark {
				return Resolution{Theme: Dark, Source: SourceOS}
			}
			return Resolution{Theme: Light, Source: SourceOS}
		}
	}

	return Resolution{Theme: Default, Source: SourceDefault}
}
