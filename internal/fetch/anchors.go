package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/renz/portfolio/internal/sections"
)

// Check is the navigation audit of one rendered page.
type Check struct {
	URL      string
	Anchors  []string // in-page nav targets, without "#"
	Sections []string // ids of <section> elements, in document order
	Active   string   // nav link marked active, if any
	Problems []string
}

// OK reports whether the page has no navigation problems.
func (c *Check) OK() bool {
	return len(c.Problems) == 0
}

// Inspect parses html and checks that every nav anchor targets one of the
// known sections and that every known section is reachable from the nav.
func Inspect(urlStr, html string) (*Check, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	check := &Check{URL: urlStr}

	doc.Find(`nav a[href^="#"]`).Each(func(_ int, s *goquery.Selection) {
		id := strings.TrimPrefix(s.AttrOr("href", ""), "#")
		if id == "" {
			return
		}
		check.Anchors = append(check.Anchors, id)
		if s.HasClass("active") && check.Active == "" {
			check.Active = id
		}
	})

	present := make(map[string]bool)
	doc.Find("section[id]").Each(func(_ int, s *goquery.Selection) {
		id := s.AttrOr("id", "")
		check.Sections = append(check.Sections, id)
		present[id] = true
	})

	linked := make(map[string]bool)
	for _, id := range check.Anchors {
		linked[id] = true
		if _, err := sections.Parse(id); err != nil {
			check.Problems = append(check.Problems, fmt.Sprintf("anchor #%s is not a known section", id))
			continue
		}
		if !present[id] {
			check.Problems = append(check.Problems, fmt.Sprintf("anchor #%s has no matching section", id))
		}
	}

	for _, sec := range sections.All() {
		if !linked[string(sec)] {
			check.Problems = append(check.Problems, fmt.Sprintf("section #%s is missing from navigation", sec))
		}
	}

	return check, nil
}
