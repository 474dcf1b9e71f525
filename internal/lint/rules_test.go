package lint

import (
	"testing"

	"github.com/learnloop/engine/internal/domain"
)

func TestLinter_Lint_Python(t *testing.T) {
	l := New()

	tests := []struct {
		name      string
		text      string
		wantKinds []domain.IssueKind
		wantLines []int
	}{
		{
			name: "clean code",
			text: "def add(a, b):\n    return a + b",
		},
		{
			name:      "missing colon on def",
			text:      "def add(a, b)\n    return a + b",
			wantKinds: []domain.IssueKind{domain.KindError},
			wantLines: []int{1},
		},
		{
			name:      "missing colon on for",
			text:      "for item in items\n    print(item)",
			wantKinds: []domain.IssueKind{domain.KindError},
			wantLines: []int{1},
		},
		{
			name: "trailing comment suppresses colon rule",
			text: "if ready  # todo",
		},
		{
			name: "open bracket suppresses colon rule",
			text: "if (\n    a and b):\n    pass",
		},
		{
			name:      "assignment in condition",
			text:      "if x = 5:\n    pass",
			wantKinds: []domain.IssueKind{domain.KindWarning},
			wantLines: []int{1},
		},
		{
			name: "comparison is fine",
			text: "if x == 5:\n    pass",
		},
		{
			name: "compound comparison is fine",
			text: "while x <= 5:\n    x += 1",
		},
		{
			name:      "assignment in while",
			text:      "while x = next(it):\n    pass",
			wantKinds: []domain.IssueKind{domain.KindWarning},
			wantLines: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := l.Lint(tt.text, domain.LangPython)
			if len(issues) != len(tt.wantKinds) {
				t.Fatalf("Lint() = %d issues (%+v), want %d", len(issues), issues, len(tt.wantKinds))
			}
			for i := range issues {
				if issues[i].Kind != tt.wantKinds[i] {
					t.Errorf("issue %d kind = %v, want %v", i, issues[i].Kind, tt.wantKinds[i])
				}
				if issues[i].Line != tt.wantLines[i] {
					t.Errorf("issue %d line = %d, want %d", i, issues[i].Line, tt.wantLines[i])
				}
			}
		})
	}
}

func TestLinter_Lint_JavaScript(t *testing.T) {
	l := New()

	tests := []struct {
		name      string
		text      string
		wantKinds []domain.IssueKind
	}{
		{
			name: "clean code",
			text: "const x = 5;\nif (x === 5) {\n  console.log(x);\n}",
		},
		{
			name:      "var declaration",
			text:      "var x = 5;",
			wantKinds: []domain.IssueKind{domain.KindSuggestion},
		},
		{
			name:      "loose equality",
			text:      "if (x == 5) {",
			wantKinds: []domain.IssueKind{domain.KindWarning},
		},
		{
			name: "strict inequality is fine",
			text: "if (x !== 5) {",
		},
		{
			name:      "var and loose equality on one line",
			text:      "var ok = x == 5;",
			wantKinds: []domain.IssueKind{domain.KindSuggestion, domain.KindWarning},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := l.Lint(tt.text, domain.LangJavaScript)
			if len(issues) != len(tt.wantKinds) {
				t.Fatalf("Lint() = %d issues (%+v), want %d", len(issues), issues, len(tt.wantKinds))
			}
			for i := range issues {
				if issues[i].Kind != tt.wantKinds[i] {
					t.Errorf("issue %d kind = %v, want %v", i, issues[i].Kind, tt.wantKinds[i])
				}
			}
		})
	}
}

func TestLinter_Lint_Markup(t *testing.T) {
	l := New()

	issues := l.Lint("<html><body></body></html>", domain.LangMarkup)
	if len(issues) != 1 {
		t.Fatalf("want doctype warning, got %+v", issues)
	}
	if issues[0].Kind != domain.KindWarning || issues[0].Line != 1 {
		t.Errorf("doctype issue = %+v, want warning at line 1", issues[0])
	}

	issues = l.Lint("<!DOCTYPE html>\n<html></html>", domain.LangMarkup)
	if len(issues) != 0 {
		t.Errorf("doctype present, want no issues, got %+v", issues)
	}

	issues = l.Lint("<!doctype html>\n<html></html>", domain.LangMarkup)
	if len(issues) != 0 {
		t.Errorf("doctype check should be case-insensitive, got %+v", issues)
	}
}

func TestLinter_Lint_StylingHasNoRules(t *testing.T) {
	l := New()

	if issues := l.Lint("body { color: red }", domain.LangStyling); len(issues) != 0 {
		t.Errorf("styling has no lint tier, got %+v", issues)
	}
}
