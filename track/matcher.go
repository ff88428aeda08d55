package track

import (
	"cmp"
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher reports which track keywords a text contains.
// Matching ignores case, punctuation and spacing, so "Tom Brady"
// matches "#TomBrady" and "tom-brady".
type Matcher struct {
	matcher  *goahocorasick.Machine
	keywords map[string]string
}

// NewMatcher initializes the Aho-Corasick automaton with a normalized version of the keywords.
func NewMatcher(keywords []string) (*Matcher, error) {
	m := &Matcher{keywords: make(map[string]string, len(keywords))}
	var patterns [][]rune
	for _, keyword := range keywords {
		pattern := normalizeRunes([]rune(keyword))
		if len(pattern) == 0 {
			continue
		}
		// First keyword wins when two normalize to the same pattern
		if _, ok := m.keywords[string(pattern)]; ok {
			continue
		}
		m.keywords[string(pattern)] = keyword
		patterns = append(patterns, pattern)
	}
	if len(patterns) == 0 {
		return m, nil
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.matcher = machine
	return m, nil
}

// Match returns the configured keywords found in text, each once, in order of first appearance.
func (m *Matcher) Match(text string) []string {
	if m == nil || m.matcher == nil {
		return nil
	}
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return nil
	}

	// The automaton reports terms by end offset
	terms := m.matcher.MultiPatternSearch(normalized, false)
	slices.SortStableFunc(terms, func(a, b *goahocorasick.Term) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	var found []string
	seen := make(map[string]struct{})
	for _, term := range terms {
		keyword, ok := m.keywords[string(term.Word)]
		if !ok {
			continue
		}
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}
		found = append(found, keyword)
	}
	return found
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
