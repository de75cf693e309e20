package sections

// Tracker owns the active section for a single page view.
type Tracker struct {
	active Section
}

// NewTracker returns a tracker starting at the home section.
func NewTracker() *Tracker {
	return &Tracker{active: Home}
}

// NewTrackerAt returns a tracker starting at s.
func NewTrackerAt(s Section) *Tracker {
	if _, ok := thresholds[s]; !ok {
		s = Home
	}
	return &Tracker{active: s}
}

// Active returns the currently highlighted section.
func (t *Tracker) Active() Section {
	return t.active
}

// Observe applies a visibility update and reports whether the active section changed.
func (t *Tracker) Observe(v Visibility) bool {
	next := Next(t.active, v)
	changed := next != t.active
	t.active = next
	return changed
}

// Select makes s active directly, as a navigation click does.
func (t *Tracker) Select(s Section) error {
	if _, ok := thresholds[s]; !ok {
		return &UnknownSectionError{ID: string(s)}
	}
	t.active = s
	return nil
}
