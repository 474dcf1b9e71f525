package checker

import (
	"fmt"
	"strings"

	"github.com/learnloop/engine/internal/domain"
)

// Policy controls how many faults a single scan reports
type Policy int

const (
	// FailFast stops at the first fault. Later faults are usually noise
	// until the first one is fixed, so they go unreported.
	FailFast Policy = iota
	// Additive reports every fault found in one scan
	Additive
)

// BalanceChecker scans source text for delimiter balance faults while
// tracking string-literal and line-comment state.
type BalanceChecker struct{}

// New creates a balance checker
func New() *BalanceChecker {
	return &BalanceChecker{}
}

var closerFor = map[rune]rune{'(': ')', '[': ']', '{': '}'}
var openerFor = map[rune]rune{')': '(', ']': '[', '}': '{'}

type opened struct {
	symbol rune
	line   int // 1-based line the delimiter was opened on
}

// Check scans text for bracket faults and returns the first one found,
// or nil when every delimiter balances.
func (c *BalanceChecker) Check(text string) *domain.FeedbackIssue {
	issues := c.scan(text, FailFast)
	if len(issues) == 0 {
		return nil
	}
	return &issues[0]
}

// CheckAll reports every bracket fault found in one scan
func (c *BalanceChecker) CheckAll(text string) []domain.FeedbackIssue {
	return c.scan(text, Additive)
}

// scan walks the text line by line. Delimiters inside string literals and
// behind line comments never touch the stack. An unescaped backslash inside
// a string suppresses the quote that follows it.
func (c *BalanceChecker) scan(text string, policy Policy) []domain.FeedbackIssue {
	var issues []domain.FeedbackIssue
	var stack []opened
	inString := false
	var quote rune

	for lineNo, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		escaped := false
		for i := 0; i < len(runes); i++ {
			ch := runes[i]

			if inString {
				switch {
				case escaped:
					escaped = false
				case ch == '\\':
					escaped = true
				case ch == quote:
					inString = false
				}
				continue
			}

			switch {
			case ch == '"' || ch == '\'' || ch == '`':
				inString = true
				quote = ch
				continue
			case ch == '#':
				i = len(runes) // comment runs to end of line
				continue
			case ch == '/' && i+1 < len(runes) && runes[i+1] == '/':
				i = len(runes)
				continue
			}

			if _, isOpener := closerFor[ch]; isOpener {
				stack = append(stack, opened{symbol: ch, line: lineNo + 1})
				continue
			}

			want, isCloser := openerFor[ch]
			if !isCloser {
				continue
			}
			if len(stack) == 0 {
				issues = append(issues, domain.FeedbackIssue{
					Kind:        domain.KindError,
					Line:        lineNo + 1,
					Message:     fmt.Sprintf("Unexpected closing '%c'", ch),
					Explanation: fmt.Sprintf("There is no matching '%c' before this.", want),
				})
				if policy == FailFast {
					return issues
				}
				continue
			}
			top := stack[len(stack)-1]
			if top.symbol != want {
				issues = append(issues, domain.FeedbackIssue{
					Kind:    domain.KindError,
					Line:    lineNo + 1,
					Message: "Mismatched brackets",
					Explanation: fmt.Sprintf("'%c' opened on line %d, but found '%c' instead of '%c'.",
						top.symbol, top.line, ch, closerFor[top.symbol]),
				})
				if policy == FailFast {
					return issues
				}
			}
			stack = stack[:len(stack)-1]
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		top := stack[i] // innermost first
		issues = append(issues, domain.FeedbackIssue{
			Kind:        domain.KindError,
			Line:        top.line,
			Message:     fmt.Sprintf("Unclosed '%c'", top.symbol),
			Explanation: fmt.Sprintf("'%c' opened on line %d is never closed.", top.symbol, top.line),
		})
		if policy == FailFast {
			return issues
		}
	}
	return issues
}
