package validate

import (
	"strings"
	"testing"

	"github.com/learnloop/engine/internal/domain"
)

func TestValidator_Validate_EmptyInput(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := v.Validate(tt.code, domain.LangPython)
			if !outcome.Blocked {
				t.Error("empty input should block")
			}
			if len(outcome.Issues) != 1 {
				t.Fatalf("want exactly one issue, got %+v", outcome.Issues)
			}
			if outcome.Issues[0].Kind != domain.KindError {
				t.Errorf("kind = %v, want error", outcome.Issues[0].Kind)
			}
		})
	}
}

func TestValidator_Validate_AssignmentInCondition(t *testing.T) {
	v := New()

	outcome := v.Validate("if x = 5:", domain.LangPython)
	if outcome.Blocked {
		t.Error("warning-only outcome should not block")
	}
	if len(outcome.Issues) != 1 {
		t.Fatalf("want 1 issue, got %+v", outcome.Issues)
	}
	issue := outcome.Issues[0]
	if issue.Kind != domain.KindWarning || issue.Line != 1 {
		t.Errorf("issue = %+v, want warning at line 1", issue)
	}
}

func TestValidator_Validate_MismatchedBrackets(t *testing.T) {
	v := New()

	outcome := v.Validate("func( { ]", domain.LangJavaScript)
	if !outcome.Blocked {
		t.Error("bracket error should block")
	}
	var found *domain.FeedbackIssue
	for i := range outcome.Issues {
		if outcome.Issues[i].Message == "Mismatched brackets" {
			found = &outcome.Issues[i]
		}
	}
	if found == nil {
		t.Fatalf("want mismatched-brackets error, got %+v", outcome.Issues)
	}
	if !strings.Contains(found.Explanation, "'{'") || !strings.Contains(found.Explanation, "']'") {
		t.Errorf("explanation should cite '{' opened and ']' found, got %q", found.Explanation)
	}
}

func TestValidator_Validate_MarkupUsesTagChecker(t *testing.T) {
	v := New()

	outcome := v.Validate("<!DOCTYPE html>\n<div><p>hi</p></div>", domain.LangMarkup)
	if outcome.Blocked {
		t.Errorf("well-formed markup should pass, got %+v", outcome.Issues)
	}

	outcome = v.Validate("<!DOCTYPE html>\n<div><p>hi</p>", domain.LangMarkup)
	if !outcome.Blocked {
		t.Error("unclosed tag should block")
	}
}

func TestValidator_Validate_StylingHasNoLintTier(t *testing.T) {
	v := New()

	outcome := v.Validate("body { color: red; }", domain.LangStyling)
	if outcome.Blocked || len(outcome.Issues) != 0 {
		t.Errorf("styling with balanced braces should lint clean, got %+v", outcome.Issues)
	}
}

func TestStatus(t *testing.T) {
	blocked := domain.NewValidationOutcome([]domain.FeedbackIssue{{Kind: domain.KindError, Message: "x"}})
	if got := Status(blocked); got != domain.StatusNeedsWork {
		t.Errorf("blocked status = %v, want needs_work", got)
	}

	clean := domain.NewValidationOutcome(nil)
	if got := Status(clean); got != domain.StatusAlmostThere {
		t.Errorf("clean status = %v, want almost_there", got)
	}
}
