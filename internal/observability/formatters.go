// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/interview-prep/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to the inner box width. fmt's width counts bytes,
// which misaligns non-ASCII text such as bullets and curly quotes.
func pad(s string) string {
	if n := boxWidth - 4 - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// PrintSubmission outputs a summary of the inputs a bundle was generated from.
func (p *Printer) PrintSubmission(sub *types.Submission) {
	if sub == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job Title: %s\n", sub.DisplayJobTitle()))
	sb.WriteString(fmt.Sprintf("Stage:     %s\n", sub.Stage))
	if sub.CompanyWebsite != "" {
		sb.WriteString(fmt.Sprintf("Company:   %s\n", sub.CompanyWebsite))
	}
	sb.WriteString(fmt.Sprintf("JD:        %d characters\n", utf8.RuneCountInString(sub.JDText)))
	sb.WriteString(fmt.Sprintf("Resume:    %d characters", utf8.RuneCountInString(sub.ResumeText)))

	p.printBox("INPUTS", sb.String())
}

// PrintBundle outputs a human-readable summary of a generated bundle.
func (p *Printer) PrintBundle(bundle *types.Bundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stage: %s\n\n", bundle.Stage))

	sb.WriteString(fmt.Sprintf("Questions (%d):\n", len(bundle.Questions)))
	count := min(len(bundle.Questions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %02d. %s\n", i+1, bundle.Questions[i]))
	}
	if len(bundle.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Questions)-maxItemsToShow))
	}
	sb.WriteString("\n")

	if len(bundle.Tips) > 0 {
		sb.WriteString("Tips:\n")
		for _, tip := range bundle.Tips {
			sb.WriteString(fmt.Sprintf("  • %s\n", tip))
		}
		sb.WriteString("\n")
	}

	keywords := strings.Join(bundle.CoverKeywords, ", ")
	sb.WriteString(fmt.Sprintf("Key skills (%d): %s", len(bundle.CoverKeywords), keywords))

	p.printBox("INTERVIEW PREP PACK", sb.String())
}

// PrintHighlight outputs the keywords found in a text, in order of appearance.
func (p *Printer) PrintHighlight(segments []types.Segment) {
	var matches []string
	for _, s := range segments {
		if s.IsMatch {
			matches = append(matches, s.Content)
		}
	}

	if len(matches) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("NO KEYWORDS FOUND"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Segments: %d\n", len(segments)))
	sb.WriteString(fmt.Sprintf("Matches:  %d\n\n", len(matches)))
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", matches[i]))
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("KEYWORD MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
