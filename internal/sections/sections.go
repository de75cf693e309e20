// Package sections tracks which page section is active for navigation highlighting.
//
// The tracker is a pure reducer over visibility flags so it can be exercised
// without a browser: callers feed it the in-view state of every section and
// get back the single section that should be highlighted.
package sections

import (
	"fmt"
	"strings"
)

// Section identifies a scroll-anchored region of the page.
type Section string

const (
	Home     Section = "home"
	Projects Section = "projects"
	About    Section = "about"
	Skills   Section = "skills"
	Contact  Section = "contact"
)

// ScrollThreshold is the vertical offset in pixels past which the header
// switches to its scrolled style.
const ScrollThreshold = 50

// order is the fixed priority used to break ties when several sections are in view.
var order = [...]Section{Home, Projects, About, Skills, Contact}

// thresholds holds the visible fraction each section needs to count as in view.
var thresholds = map[Section]float64{
	Home:     0.5,
	Projects: 0.2,
	About:    0.2,
	Skills:   0.2,
	Contact:  0.2,
}

// All returns the sections in priority order.
func All() []Section {
	out := make([]Section, len(order))
	copy(out, order[:])
	return out
}

// Parse converts a section id into a Section.
func Parse(id string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(id)))
	if _, ok := thresholds[s]; !ok {
		return "", &UnknownSectionError{ID: id}
	}
	return s, nil
}

// Threshold returns the visible fraction required for s to be considered in view.
func Threshold(s Section) float64 {
	return thresholds[s]
}

// Label returns the navigation label for s.
func Label(s Section) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Anchor returns the in-page anchor for s.
func Anchor(s Section) string {
	return "#" + string(s)
}

// UnknownSectionError is returned when a section id is not one of the fixed set.
type UnknownSectionError struct {
	ID string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %q", e.ID)
}

// Visibility records whether each section is currently in view.
// Sections missing from the map are treated as not visible.
type Visibility map[Section]bool

// InView reports whether a visible fraction meets the threshold for s.
func InView(s Section, fraction float64) bool {
	t, ok := thresholds[s]
	if !ok {
		return false
	}
	return fraction >= t
}

// FromFractions builds a Visibility from observed visible fractions.
func FromFractions(fractions map[Section]float64) Visibility {
	v := make(Visibility, len(fractions))
	for s, f := range fractions {
		v[s] = InView(s, f)
	}
	return v
}

// Next returns the section that should be active given the current one and the
// latest visibility flags. The first visible section in priority order wins; when
// nothing is visible the current section is kept.
func Next(current Section, v Visibility) Section {
	for _, s := range order {
		if v[s] {
			return s
		}
	}
	return current
}

// Scrolled reports whether the page is scrolled far enough to restyle the header.
func Scrolled(offsetY float64) bool {
	return offsetY > ScrollThreshold
}
