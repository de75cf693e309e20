// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/renz/portfolio/internal/fetch"
	"github.com/renz/portfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPortfolio outputs a summary of the content the server will render.
func (p *Printer) PrintPortfolio(portfolio *types.Portfolio) {
	if portfolio == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", portfolio.Profile.Name))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", portfolio.Profile.Role))
	sb.WriteString(fmt.Sprintf("Projects: %d\n", len(portfolio.Projects)))

	count := min(len(portfolio.Projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		project := portfolio.Projects[i]
		sb.WriteString(fmt.Sprintf("  • %s", project.Title))
		if project.Status != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", project.Status))
		}
		sb.WriteString("\n")
	}
	if len(portfolio.Projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(portfolio.Projects)-maxItemsToShow))
	}

	groups := portfolio.Skills.Groups()
	if len(groups) > 0 {
		sb.WriteString("\nSkills:\n")
		for _, g := range groups {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", g.Title, len(g.Skills)))
		}
	}

	p.printBox("PORTFOLIO CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNavCheck outputs the navigation audit of one page.
func (p *Printer) PrintNavCheck(check *fetch.Check) {
	if check == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("URL:      %s\n", check.URL))
	sb.WriteString(fmt.Sprintf("Anchors:  %s\n", joinOrNone(check.Anchors)))
	sb.WriteString(fmt.Sprintf("Sections: %s\n", joinOrNone(check.Sections)))
	if check.Active != "" {
		sb.WriteString(fmt.Sprintf("Active:   %s\n", check.Active))
	}

	if check.OK() {
		sb.WriteString("\n✓ every nav anchor targets a known section")
	} else {
		sb.WriteString(fmt.Sprintf("\n✗ %d problem(s):\n", len(check.Problems)))
		count := min(len(check.Problems), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", check.Problems[i]))
		}
		if len(check.Problems) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(check.Problems)-maxItemsToShow))
		}
	}

	p.printBox("NAVIGATION CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVerifySummary outputs the pass/fail totals across checked pages.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVerifySummary(checks []*fetch.Check, failures map[string]error) {
	passed := 0
	for _, c := range checks {
		if c != nil && c.OK() {
			passed++
		}
	}
	fmt.Fprintf(p.out, "Checked %d page(s): %d passed, %d failed\n",
		len(checks)+len(failures), passed, len(checks)-passed+len(failures))
	for url, err := range failures {
		fmt.Fprintf(p.out, "  %s: %v\n", url, err)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
