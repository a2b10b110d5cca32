package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

// Section names a plain-text export.
type Section string

const (
	SectionAll       Section = "all"
	SectionQuestions Section = "questions"
	SectionFramework Section = "framework"
	SectionTips      Section = "tips"
)

// UnknownSectionError is returned for an export section that does not exist.
type UnknownSectionError struct {
	Value string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown export section: %q", e.Value)
}

// ParseSection validates a section name.
func ParseSection(value string) (Section, error) {
	switch s := Section(strings.ToLower(strings.TrimSpace(value))); s {
	case SectionAll, SectionQuestions, SectionFramework, SectionTips:
		return s, nil
	default:
		return "", &UnknownSectionError{Value: value}
	}
}

// JoinLines joins lines with newlines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// CopyAll formats the whole bundle for the clipboard: numbered questions, then the
// framework, tips, and keywords, each under a heading and separated by a blank line.
func CopyAll(b *types.Bundle) string {
	lines := make([]string, 0, len(b.Questions)+len(b.StarFramework)+len(b.Tips)+len(b.CoverKeywords)+7)

	lines = append(lines, "Questions:")
	for i, q := range b.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}

	lines = append(lines, "", "STAR Framework:")
	lines = append(lines, b.StarFramework...)

	lines = append(lines, "", "Tips:")
	lines = append(lines, b.Tips...)

	lines = append(lines, "", "Key Skills to Cover:")
	lines = append(lines, b.CoverKeywords...)

	return JoinLines(lines)
}

// Export returns the plain text for one section.
func Export(b *types.Bundle, section Section) (string, error) {
	switch section {
	case SectionAll:
		return CopyAll(b), nil
	case SectionQuestions:
		return JoinLines(b.Questions), nil
	case SectionFramework:
		return JoinLines(b.StarFramework), nil
	case SectionTips:
		return JoinLines(b.Tips), nil
	default:
		return "", &UnknownSectionError{Value: string(section)}
	}
}
