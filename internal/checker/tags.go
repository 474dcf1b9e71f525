package checker

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/learnloop/engine/internal/domain"
)

// voidElements never take a closing tag and so never push onto the stack
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

type openedTag struct {
	name string
	line int
}

// CheckTags scans markup for tag nesting faults. Unlike Check, tag faults
// are additive: one issue per mismatched closer plus one per tag still open
// at the end of the scan.
func (c *BalanceChecker) CheckTags(text string) []domain.FeedbackIssue {
	var issues []domain.FeedbackIssue
	var stack []openedTag

	for lineNo, line := range strings.Split(text, "\n") {
		rest := line
		offset := 0
		for {
			lt := strings.Index(rest, "<")
			if lt < 0 {
				break
			}
			gt := strings.Index(rest[lt:], ">")
			if gt < 0 {
				break
			}
			tag := rest[lt : lt+gt+1]
			offset += lt + gt + 1
			rest = line[offset:]

			name, closing, selfClosing := parseTag(tag)
			if name == "" || voidElements[name] {
				continue
			}
			if selfClosing {
				continue
			}
			if !closing {
				stack = append(stack, openedTag{name: name, line: lineNo + 1})
				continue
			}
			if len(stack) == 0 {
				issues = append(issues, domain.FeedbackIssue{
					Kind:        domain.KindError,
					Line:        lineNo + 1,
					Message:     fmt.Sprintf("Unexpected closing tag </%s>", name),
					Explanation: fmt.Sprintf("<%s> was never opened.", name),
				})
				continue
			}
			top := stack[len(stack)-1]
			if top.name != name {
				issues = append(issues, domain.FeedbackIssue{
					Kind:    domain.KindError,
					Line:    lineNo + 1,
					Message: "Mismatched tags",
					Explanation: fmt.Sprintf("<%s> opened on line %d, but found </%s> instead of </%s>.",
						top.name, top.line, name, top.name),
				})
			}
			stack = stack[:len(stack)-1]
		}
	}

	for _, tag := range stack {
		issues = append(issues, domain.FeedbackIssue{
			Kind:        domain.KindError,
			Line:        tag.line,
			Message:     fmt.Sprintf("Unclosed tag <%s>", tag.name),
			Explanation: fmt.Sprintf("<%s> opened on line %d is never closed.", tag.name, tag.line),
		})
	}
	return issues
}

// parseTag extracts the tag name from a raw "<...>" token. Comments,
// doctype and other "<!" declarations yield an empty name.
func parseTag(tag string) (name string, closing, selfClosing bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">")
	inner = strings.TrimSpace(inner)
	if inner == "" || strings.HasPrefix(inner, "!") || strings.HasPrefix(inner, "?") {
		return "", false, false
	}
	if strings.HasPrefix(inner, "/") {
		closing = true
		inner = strings.TrimSpace(inner[1:])
	}
	if strings.HasSuffix(inner, "/") {
		selfClosing = true
		inner = strings.TrimSpace(inner[:len(inner)-1])
	}
	end := len(inner)
	for i, r := range inner {
		if unicode.IsSpace(r) {
			end = i
			break
		}
	}
	return strings.ToLower(inner[:end]), closing, selfClosing
}
