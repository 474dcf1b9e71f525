// Package match implements fuzzy matching of learner-submitted command
// strings against authored expected patterns: regex first, then exact
// comparison, then an edit-distance near-miss check whose tolerance comes
// from the learner's skill profile.
package match

import (
	"regexp"
	"strings"

	"github.com/learnloop/engine/internal/domain"
)

// Matcher tests learner input against expected patterns
type Matcher struct{}

// New creates a matcher
func New() *Matcher {
	return &Matcher{}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize trims the input and collapses internal whitespace runs
func Normalize(input string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(input), " ")
}

// Match tests input against the expected patterns in order.
//
// Patterns tagged (or inferred) as regex are tried case-insensitively; a
// pattern that fails to compile silently falls back to exact comparison.
// Exact comparison is case-sensitive only for advanced learners. For other
// levels a near miss within the skill's typo tolerance ends the scan with a
// non-matching "did you mean" hint; later patterns are not consulted once a
// near miss is found, even if one of them would have matched exactly.
func (m *Matcher) Match(input string, patterns []domain.Pattern, skill domain.SkillLevel, kind domain.ExerciseKind) domain.MatchResult {
	profile := domain.ProfileFor(skill)
	normalized := Normalize(input)

	if normalized == "" {
		return domain.MatchResult{Feedback: feedbackFor(kind)}
	}

	if kind == domain.KindFreeForm {
		return matchFreeForm(normalized)
	}

	for _, pattern := range patterns {
		if tryRegex(pattern) {
			re, err := regexp.Compile("(?i)" + pattern.Text)
			if err == nil {
				if re.MatchString(normalized) {
					return domain.MatchResult{Matched: true}
				}
				continue
			}
			// Malformed pattern: fall through to exact comparison.
		}

		candidate := normalized
		expected := pattern.Text
		if !profile.CaseSensitive {
			candidate = strings.ToLower(candidate)
			expected = strings.ToLower(expected)
		}
		if candidate == expected {
			return domain.MatchResult{Matched: true}
		}

		if skill == domain.SkillAdvanced {
			continue
		}
		if d := levenshtein(candidate, expected); d > 0 && d <= profile.MaxTypoDistance {
			return domain.MatchResult{
				NearMiss: pattern.Text,
				Feedback: "Almost! Did you mean: " + pattern.Text,
			}
		}
	}

	return domain.MatchResult{}
}

// tryRegex decides whether a pattern should be tried as a regular
// expression. Explicit author tags win; auto patterns keep the historical
// inference: leading '^', trailing '$', or any backslash.
func tryRegex(p domain.Pattern) bool {
	switch p.Kind {
	case domain.PatternRegex:
		return true
	case domain.PatternLiteral:
		return false
	}
	return strings.HasPrefix(p.Text, "^") ||
		strings.HasSuffix(p.Text, "$") ||
		strings.Contains(p.Text, `\`)
}

// matchFreeForm accepts any plausibly substantive open-ended prompt. There
// is no fixed correct answer, so the bar is deliberately low: three or more
// words, a question mark, or ten characters.
func matchFreeForm(normalized string) domain.MatchResult {
	if len(strings.Fields(normalized)) >= 3 ||
		strings.Contains(normalized, "?") ||
		len(normalized) >= 10 {
		return domain.MatchResult{Matched: true}
	}
	return domain.MatchResult{Feedback: "Try writing a fuller prompt."}
}

func feedbackFor(kind domain.ExerciseKind) string {
	if kind == domain.KindFreeForm {
		return "Enter a prompt first."
	}
	return "Enter a command first."
}
