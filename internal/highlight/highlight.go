// Package highlight splits text into segments that are or are not keyword occurrences.
package highlight

import (
	"regexp"
	"strings"

	"github.com/jonathan/interview-prep/internal/types"
)

// Matcher is a compiled, case-insensitive keyword set. A nil pattern means the set is empty.
// Matcher is safe for concurrent use.
type Matcher struct {
	keywords []string
	pattern  *regexp.Regexp
}

// NewMatcher compiles keywords into a single alternation. Keywords are matched literally;
// empty keywords are ignored. When candidates overlap at the same position, the keyword
// listed first wins.
func NewMatcher(keywords []string) *Matcher {
	alternatives := make([]string, 0, len(keywords))
	kept := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k == "" {
			continue
		}
		kept = append(kept, k)
		alternatives = append(alternatives, regexp.QuoteMeta(k))
	}

	m := &Matcher{keywords: kept}
	if len(alternatives) > 0 {
		// QuoteMeta output always compiles.
		m.pattern = regexp.MustCompile(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
	}
	return m
}

// Keywords returns the non-empty keywords in their original order.
func (m *Matcher) Keywords() []string {
	return append([]string(nil), m.keywords...)
}

// Highlight splits text into segments whose contents concatenate back to text.
// Matched segments keep the casing found in text. Empty text yields no segments.
func (m *Matcher) Highlight(text string) []types.Segment {
	if text == "" {
		return nil
	}
	if m.pattern == nil {
		return []types.Segment{{Content: text}}
	}

	locs := m.pattern.FindAllStringIndex(text, -1)
	segments := make([]types.Segment, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start > pos {
			segments = append(segments, types.Segment{Content: text[pos:start]})
		}
		segments = append(segments, types.Segment{Content: text[start:end], IsMatch: true})
		pos = end
	}
	if pos < len(text) {
		segments = append(segments, types.Segment{Content: text[pos:]})
	}
	return segments
}

// Highlight is a one-shot form of NewMatcher(keywords).Highlight(text).
func Highlight(text string, keywords []string) []types.Segment {
	return NewMatcher(keywords).Highlight(text)
}

// Join concatenates segment contents.
func Join(segments []types.Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Content)
	}
	return sb.String()
}

// Matches returns the contents of matched segments in order.
func Matches(segments []types.Segment) []string {
	var out []string
	for _, s := range segments {
		if s.IsMatch {
			out = append(out, s.Content)
		}
	}
	return out
}
