// Package titles normalizes raw job titles into canonical display form.
// Titles arriving in emails are noisy ("Sr. SWE II", "software engineer
// (remote)"), and grouping by the raw string fragments the metrics.
package titles

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyTitle is returned when a title is blank after cleanup.
var ErrEmptyTitle = errors.New("job title is empty")

// abbreviations maps common shorthand tokens to their expanded form.
var abbreviations = map[string]string{
	"swe":    "software engineer",
	"sde":    "software development engineer",
	"sre":    "site reliability engineer",
	"qa":     "quality assurance",
	"pm":     "product manager",
	"ml":     "machine learning",
	"ai":     "artificial intelligence",
	"devops": "devops",
	"eng":    "engineer",
	"dev":    "developer",
	"mgr":    "manager",
}

// seniorityTokens are rank markers dropped so that "Senior Software
// Engineer" and "Software Engineer" group together.
var seniorityTokens = map[string]struct{}{
	"senior":    {},
	"sr":        {},
	"sr.":       {},
	"junior":    {},
	"jr":        {},
	"jr.":       {},
	"lead":      {},
	"staff":     {},
	"principal": {},
	"associate": {},
	"intern":    {},
	"entry":     {},
	"mid":       {},
}

// levelSuffix matches trailing level markers like "II", "iii" or "3".
var levelSuffix = regexp.MustCompile(`^(i|ii|iii|iv|v|[0-9])$`)

// parenthetical strips bracketed qualifiers like "(remote)" or "[contract]".
var parenthetical = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

// Normalizer canonicalizes job titles with deterministic token rules.
type Normalizer struct {
	caser func(string) string
}

// NewNormalizer constructs a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		// cases.Caser is stateful; build one per call to stay goroutine-safe.
		caser: func(s string) string {
			return cases.Title(language.English).String(s)
		},
	}
}

// Normalize returns the canonical title-cased form of a raw job title.
// It strips bracketed qualifiers, seniority markers, and level suffixes,
// and expands common abbreviations. Returns ErrEmptyTitle when nothing
// usable remains.
func (n *Normalizer) Normalize(title string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(title))
	if s == "" {
		return "", ErrEmptyTitle
	}

	s = parenthetical.ReplaceAllString(s, " ")
	s = strings.NewReplacer(",", " ", "/", " ", "-", " ").Replace(s)

	tokens := strings.Fields(s)
	kept := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if _, drop := seniorityTokens[tok]; drop {
			continue
		}
		// Level suffixes only count at the end of the title.
		if i == len(tokens)-1 && len(kept) > 0 && levelSuffix.MatchString(tok) {
			continue
		}
		if expanded, ok := abbreviations[tok]; ok {
			kept = append(kept, strings.Fields(expanded)...)
			continue
		}
		kept = append(kept, tok)
	}

	if len(kept) == 0 {
		return "", ErrEmptyTitle
	}
	return n.caser(strings.Join(kept, " ")), nil
}
