// Package lint implements per-language heuristic checks layered on top of
// bracket/tag balance. The rules are regex and line based, no AST: false
// positives (keywords inside strings, for one) are an accepted trade-off in
// exchange for instant feedback.
package lint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/learnloop/engine/internal/domain"
)

// lineRule inspects one trimmed, non-empty line. Rules are independent and
// order-insensitive; their results are concatenated, never deduplicated.
type lineRule func(lineNo int, line string) *domain.FeedbackIssue

// docRule inspects the whole document once
type docRule func(text string) *domain.FeedbackIssue

var (
	blockKeywordRe = regexp.MustCompile(`^(def|if|elif|else|for|while|class|try|except|finally|with)\b`)
	condKeywordRe  = regexp.MustCompile(`^(if|elif|while)\b`)
	looseEqRe      = regexp.MustCompile(`(^|[^=!<>])==($|[^=])`)
	varDeclRe      = regexp.MustCompile(`(^|[\s;({])var\s`)
	doctypeRe      = regexp.MustCompile(`(?i)<!doctype`)
	compareOpRe    = regexp.MustCompile(`===|!==|==|<=|>=|!=`)
)

// Linter applies the heuristic rule set for a language
type Linter struct {
	lineRules map[domain.Language][]lineRule
	docRules  map[domain.Language][]docRule
}

// New creates a linter with the built-in rule sets. Languages without an
// entry (styling, for now) lint clean: their deeper checks belong to the
// semantic tier.
func New() *Linter {
	return &Linter{
		lineRules: map[domain.Language][]lineRule{
			domain.LangPython:     {missingColon, assignmentInCondition},
			domain.LangJavaScript: {legacyDeclaration, looseEquality, assignmentInCondition},
		},
		docRules: map[domain.Language][]docRule{
			domain.LangMarkup: {missingDoctype},
		},
	}
}

// Lint runs every rule for the language over the text and concatenates the
// results. Multiple rules may fire on the same line.
func (l *Linter) Lint(text string, language domain.Language) []domain.FeedbackIssue {
	var issues []domain.FeedbackIssue

	for _, rule := range l.docRules[language] {
		if issue := rule(text); issue != nil {
			issues = append(issues, *issue)
		}
	}

	rules := l.lineRules[language]
	if len(rules) == 0 {
		return issues
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		for _, rule := range rules {
			if issue := rule(i+1, line); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}
	return issues
}

// missingColon flags block-opening keywords whose line does not end with a
// colon. Lines continued with a backslash, left open by a bracket, or
// carrying a trailing comment are skipped.
func missingColon(lineNo int, line string) *domain.FeedbackIssue {
	if !blockKeywordRe.MatchString(line) {
		return nil
	}
	if strings.Contains(line, "#") {
		return nil
	}
	switch {
	case strings.HasSuffix(line, ":"),
		strings.HasSuffix(line, "\\"),
		strings.HasSuffix(line, "("),
		strings.HasSuffix(line, "["),
		strings.HasSuffix(line, "{"),
		strings.HasSuffix(line, ","):
		return nil
	}
	keyword := blockKeywordRe.FindString(line)
	return &domain.FeedbackIssue{
		Kind:        domain.KindError,
		Line:        lineNo,
		Message:     "Missing colon at end of '" + keyword + "' statement",
		Explanation: "Block statements like '" + keyword + "' need a ':' at the end of the line.",
		Hint:        "Add ':' to the end of line " + strconv.Itoa(lineNo) + ".",
	}
}

// assignmentInCondition flags a lone '=' in a condition line, a likely typo
// for '=='. Comparison operators are stripped first so they cannot mask it.
func assignmentInCondition(lineNo int, line string) *domain.FeedbackIssue {
	if !condKeywordRe.MatchString(line) {
		return nil
	}
	stripped := compareOpRe.ReplaceAllString(line, "")
	if strings.Count(stripped, "=") != 1 {
		return nil
	}
	return &domain.FeedbackIssue{
		Kind:        domain.KindWarning,
		Line:        lineNo,
		Message:     "Assignment in condition",
		Explanation: "'=' assigns a value; '==' compares. A condition almost always wants '=='.",
		Hint:        "Did you mean '==' on line " + strconv.Itoa(lineNo) + "?",
	}
}

// legacyDeclaration suggests block-scoped declarations over 'var'
func legacyDeclaration(lineNo int, line string) *domain.FeedbackIssue {
	if !varDeclRe.MatchString(line) {
		return nil
	}
	return &domain.FeedbackIssue{
		Kind:        domain.KindSuggestion,
		Line:        lineNo,
		Message:     "Prefer 'let' or 'const' over 'var'",
		Explanation: "'var' is function-scoped and hoisted; 'let' and 'const' are block-scoped.",
	}
}

// looseEquality flags '==' that is not part of '===' (or '!==')
func looseEquality(lineNo int, line string) *domain.FeedbackIssue {
	if !looseEqRe.MatchString(line) {
		return nil
	}
	return &domain.FeedbackIssue{
		Kind:        domain.KindWarning,
		Line:        lineNo,
		Message:     "Loose equality '=='",
		Explanation: "'==' coerces types before comparing; '===' compares value and type.",
		Hint:        "Use '===' unless you need type coercion.",
	}
}

// missingDoctype warns when a markup document has no doctype declaration
func missingDoctype(text string) *domain.FeedbackIssue {
	if doctypeRe.MatchString(text) {
		return nil
	}
	return &domain.FeedbackIssue{
		Kind:        domain.KindWarning,
		Line:        1,
		Message:     "Missing doctype declaration",
		Explanation: "Browsers fall back to quirks mode without '<!DOCTYPE html>' on the first line.",
	}
}
