package theme

import "fmt"

// Preference is the two-state machine behind the theme toggle.
type Preference struct {
	store   Store
	current Theme
	source  string
}

// NewPreference resolves the initial state from store and os.
func NewPreference(store Store, os OSPreference) *Preference {
	r := Resolve(store, os)
	return &Preference{
		store:   store,
		current: r.Theme,
		source:  r.Source,
	}
}

// Current returns the active theme.
func (p *Preference) Current() Theme {
	return p.current
}

// Source reports where the current theme came from.
func (p *Preference) Source() string {
	return p.source
}

// Toggle flips the theme unconditionally and persists the new value.
// The in-memory state changes even if persisting fails.
func (p *Preference) Toggle() (Theme, error) {
	p.current = p.current.Toggle()
	p.source = SourceStored

	if p.store == nil {
		return p.current, nil
	}
	if err := p.store.Save(p.current); err != nil {
		return p.current, fmt.Errorf("failed to persist theme %s: %w", p.current, err)
	}
	return p.current, nil
}
