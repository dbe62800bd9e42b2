package logic

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"searchwidget/internal/domain"
)

// combiningMark matches the Combining Diacritical Marks block
func combiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// Normalize decomposes s and strips combining diacritical marks,
// so "Café" and "Cafe" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(combiningMark)))
	out, _, err := transform.String(t, s)
	if err != nil {
		log.Printf("Normalize failed for %q: %v", s, err)
		return s
	}
	return out
}

// Matcher tests option labels against a query
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds a case-insensitive substring matcher from the normalized query.
// User input is escaped; should compilation still fail the matcher matches nothing.
func NewMatcher(query string) *Matcher {
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(Normalize(query)))
	if err != nil {
		log.Printf("Invalid match pattern for %q: %v", query, err)
		return &Matcher{}
	}
	return &Matcher{re: re}
}

// Match reports whether the pattern is found in the normalized or the raw label
func (m *Matcher) Match(label string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(Normalize(label)) || m.re.MatchString(label)
}

// Filter returns the options whose label matches query, in their original order.
// The result is never nil.
func Filter(options []domain.Option, query string) []domain.Option {
	m := NewMatcher(query)
	visible := make([]domain.Option, 0, len(options))
	for _, opt := range options {
		if m.Match(opt.Label) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// Suggest returns the label closest to query by edit distance.
// Only reasonably close labels are suggested: the distance must not exceed
// a third of the query length (at least one edit).
func Suggest(options []domain.Option, query string) (domain.Option, bool) {
	q := strings.ToLower(Normalize(strings.TrimSpace(query)))
	if q == "" {
		return domain.Option{}, false
	}

	limit := utf8.RuneCountInString(q) / 3
	if limit < 1 {
		limit = 1
	}

	best := -1
	bestDist := limit + 1
	for i, opt := range options {
		label := strings.ToLower(Normalize(opt.Label))
		dist := levenshtein.ComputeDistance(q, label)
		// Also compare against the label prefix of the same length so
		// partially typed labels still get a hint
		if n := utf8.RuneCountInString(q); utf8.RuneCountInString(label) > n {
			if d := levenshtein.ComputeDistance(q, string([]rune(label)[:n])); d < dist {
				dist = d
			}
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if best < 0 {
		return domain.Option{}, false
	}
	return options[best], true
}
