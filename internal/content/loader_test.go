package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/learnloop/engine/internal/domain"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const commandExercise = `
id: git-v1/first-status
title: Check repository status
kind: command
prompt: Show the working tree status.
patterns:
  - text: "^git status$"
    kind: regex
  - text: git status
hints:
  - Start with "git".
  - The subcommand reports working tree state.
`

const sequenceExercise = `
id: web-v1/page-order
title: Order the page lifecycle
kind: sequence
items: [request, parse, render]
answer:
  sequence: [request, parse, render]
hints:
  - What must happen before anything can be parsed?
`

func TestLoader_LoadExercise_Command(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first-status.yaml", commandExercise)

	ex, err := NewLoader(dir).LoadExercise("first-status.yaml")
	if err != nil {
		t.Fatalf("LoadExercise() error = %v", err)
	}

	if ex.Kind != domain.KindCommand {
		t.Errorf("kind = %v, want command", ex.Kind)
	}
	if len(ex.Patterns) != 2 {
		t.Fatalf("patterns = %+v", ex.Patterns)
	}
	if ex.Patterns[0].Kind != domain.PatternRegex {
		t.Errorf("tagged pattern kind = %v, want regex", ex.Patterns[0].Kind)
	}
	if ex.Patterns[1].Kind != domain.PatternAuto {
		t.Errorf("untagged pattern kind = %v, want auto", ex.Patterns[1].Kind)
	}
	if len(ex.Hints) != 2 {
		t.Errorf("hints = %v", ex.Hints)
	}
}

func TestLoader_LoadExercise_Sequence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page-order.yaml", sequenceExercise)

	ex, err := NewLoader(dir).LoadExercise("page-order.yaml")
	if err != nil {
		t.Fatalf("LoadExercise() error = %v", err)
	}
	key, ok := ex.Key.(domain.SequenceKey)
	if !ok {
		t.Fatalf("key = %T, want SequenceKey", ex.Key)
	}
	if key.Size() != 3 {
		t.Errorf("key size = %d, want 3", key.Size())
	}
}

func TestLoader_LoadExercise_AuthoringFaults(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "unknown kind",
			body:    "id: x\nkind: crossword\n",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "command without patterns",
			body:    "id: x\nkind: command\n",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown language",
			body:    "id: x\nkind: code\nlanguage: cobol\n",
			wantErr: domain.ErrUnknownLanguage,
		},
		{
			name:    "sequence with pairs answer",
			body:    "id: x\nkind: sequence\nitems: [a, b]\nanswer:\n  pairs: {a: b}\n",
			wantErr: domain.ErrKeyKindMismatch,
		},
		{
			name:    "command with answer block",
			body:    "id: x\nkind: command\npatterns:\n  - text: ls\nanswer:\n  sequence: [a]\n",
			wantErr: domain.ErrKeyKindMismatch,
		},
		{
			name:    "sequence without key",
			body:    "id: x\nkind: sequence\nitems: [a, b]\n",
			wantErr: domain.ErrNoAnswerKey,
		},
		{
			name:    "item set mismatch",
			body:    "id: x\nkind: sequence\nitems: [a, b, c]\nanswer:\n  sequence: [a, b]\n",
			wantErr: domain.ErrItemSetMismatch,
		},
		{
			name:    "unkeyed presented item",
			body:    "id: x\nkind: categorize\nitems: [a, b]\nanswer:\n  categories: {a: one, c: two}\n",
			wantErr: domain.ErrItemSetMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.yaml", tt.body)

			_, err := NewLoader(dir).LoadExercise("bad.yaml")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_LoadSkipsBadContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", commandExercise)
	writeFile(t, dir, "nested/also-good.yaml", sequenceExercise)
	writeFile(t, dir, "bad.yaml", "id: broken\nkind: sequence\n")

	reg := NewRegistry(NewLoader(dir), nil)
	if err := reg.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ids := reg.List()
	if len(ids) != 2 {
		t.Fatalf("ids = %v, want the two valid exercises", ids)
	}

	if _, err := reg.Get("git-v1/first-status"); err != nil {
		t.Errorf("Get() error = %v", err)
	}
	if _, err := reg.Get("broken"); !errors.Is(err, domain.ErrExerciseNotFound) {
		t.Errorf("bad content should not be registered, err = %v", err)
	}
}
