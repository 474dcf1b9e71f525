// Package content loads authored exercise definitions from YAML and keeps
// them in an in-memory registry. Authoring faults are caught here, at load
// time: a learner should never meet a malformed exercise at runtime.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/learnloop/engine/internal/domain"
)

// ExerciseFile is the YAML schema for one authored exercise
type ExerciseFile struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Kind       string `yaml:"kind"`
	Language   string `yaml:"language,omitempty"`
	SkillFloor string `yaml:"skill_floor,omitempty"`
	Prompt     string `yaml:"prompt,omitempty"`

	Patterns []PatternFile `yaml:"patterns,omitempty"`
	Items    []string      `yaml:"items,omitempty"`
	Answer   AnswerFile    `yaml:"answer,omitempty"`
	Hints    []string      `yaml:"hints,omitempty"`
}

// PatternFile is one expected pattern, with an optional explicit kind tag.
// Untagged patterns keep the regex-inference behavior.
type PatternFile struct {
	Text string `yaml:"text"`
	Kind string `yaml:"kind,omitempty"` // literal | regex
}

// AnswerFile holds the variant-specific answer key; exactly one of the
// fields may be set, matching the exercise kind.
type AnswerFile struct {
	Sequence   []string          `yaml:"sequence,omitempty"`
	Pairs      map[string]string `yaml:"pairs,omitempty"`
	Categories map[string]string `yaml:"categories,omitempty"`
}

// Exercise is a loaded, validated exercise definition
type Exercise struct {
	ID       string
	Title    string
	Kind     domain.ExerciseKind
	Language domain.Language
	Prompt   string
	Patterns []domain.Pattern
	Items    []string // presented item IDs for structured kinds
	Key      domain.AnswerKey
	Hints    []string
}

// Loader loads exercise files from a directory tree
type Loader struct {
	basePath string
}

// NewLoader creates an exercise loader rooted at basePath
func NewLoader(basePath string) *Loader {
	return &Loader{basePath: basePath}
}

// LoadExercise loads and validates a single exercise file
func (l *Loader) LoadExercise(relPath string) (*Exercise, error) {
	data, err := os.ReadFile(filepath.Join(l.basePath, relPath))
	if err != nil {
		return nil, fmt.Errorf("read exercise file: %w", err)
	}

	var file ExerciseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse exercise file %s: %w", relPath, err)
	}

	return buildExercise(&file)
}

// LoadAll loads every .yaml file under the base path. Files that fail
// authoring validation are returned as errors alongside the good ones so
// the registry can log and skip them.
func (l *Loader) LoadAll() ([]*Exercise, []error) {
	var exercises []*Exercise
	var errs []error

	walkErr := filepath.WalkDir(l.basePath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		rel, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		ex, err := l.LoadExercise(rel)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rel, err))
			return nil
		}
		exercises = append(exercises, ex)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return exercises, errs
}

// buildExercise converts the file form into the validated domain form
func buildExercise(file *ExerciseFile) (*Exercise, error) {
	if file.ID == "" {
		return nil, fmt.Errorf("%w: missing exercise id", domain.ErrInvalidInput)
	}
	kind := domain.ExerciseKind(file.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown exercise kind %q", domain.ErrInvalidInput, file.Kind)
	}
	if file.Language != "" && !domain.Language(file.Language).Valid() {
		return nil, fmt.Errorf("%w: %q in exercise %s", domain.ErrUnknownLanguage, file.Language, file.ID)
	}
	if err := checkAnswerShape(kind, &file.Answer); err != nil {
		return nil, fmt.Errorf("%w in exercise %s", err, file.ID)
	}

	ex := &Exercise{
		ID:       file.ID,
		Title:    file.Title,
		Kind:     kind,
		Language: domain.Language(file.Language),
		Prompt:   file.Prompt,
		Items:    file.Items,
		Hints:    file.Hints,
	}

	for _, p := range file.Patterns {
		patternKind := domain.PatternAuto
		switch p.Kind {
		case "literal":
			patternKind = domain.PatternLiteral
		case "regex":
			patternKind = domain.PatternRegex
		case "":
		default:
			return nil, fmt.Errorf("%w: unknown pattern kind %q", domain.ErrInvalidInput, p.Kind)
		}
		ex.Patterns = append(ex.Patterns, domain.Pattern{Text: p.Text, Kind: patternKind})
	}

	switch kind {
	case domain.KindSequence:
		ex.Key = domain.SequenceKey(file.Answer.Sequence)
	case domain.KindMatch:
		ex.Key = domain.MatchKey(file.Answer.Pairs)
	case domain.KindCategorize:
		ex.Key = domain.CategorizeKey(file.Answer.Categories)
	}

	if err := validateAuthoring(ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// checkAnswerShape rejects an answer block whose populated field does not
// belong to the exercise kind, so a wrong-shaped key is caught at load time
// instead of silently scoring as unscoreable.
func checkAnswerShape(kind domain.ExerciseKind, answer *AnswerFile) error {
	allowed := map[domain.ExerciseKind]string{
		domain.KindSequence:   "sequence",
		domain.KindMatch:      "pairs",
		domain.KindCategorize: "categories",
	}[kind]

	for field, set := range map[string]bool{
		"sequence":   len(answer.Sequence) > 0,
		"pairs":      len(answer.Pairs) > 0,
		"categories": len(answer.Categories) > 0,
	} {
		if set && field != allowed {
			return fmt.Errorf("%w: %s exercise carries a %s answer", domain.ErrKeyKindMismatch, kind, field)
		}
	}
	return nil
}

// validateAuthoring enforces the content invariants: structured kinds need
// a key whose item IDs exactly match the presented items; command kinds
// need at least one expected pattern.
func validateAuthoring(ex *Exercise) error {
	switch ex.Kind {
	case domain.KindCommand:
		if len(ex.Patterns) == 0 {
			return fmt.Errorf("%w: command exercise %s has no expected patterns", domain.ErrInvalidInput, ex.ID)
		}
	case domain.KindSequence, domain.KindMatch, domain.KindCategorize:
		if ex.Key == nil || ex.Key.Size() == 0 {
			return fmt.Errorf("%w: exercise %s", domain.ErrNoAnswerKey, ex.ID)
		}
		if len(ex.Items) > 0 {
			if err := checkItemSet(ex); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkItemSet(ex *Exercise) error {
	keyed := make(map[string]bool)
	switch k := ex.Key.(type) {
	case domain.SequenceKey:
		for _, id := range k {
			keyed[id] = true
		}
	case domain.MatchKey:
		for id := range k {
			keyed[id] = true
		}
	case domain.CategorizeKey:
		for id := range k {
			keyed[id] = true
		}
	}

	if len(keyed) != len(ex.Items) {
		return fmt.Errorf("%w: exercise %s keys %d items, presents %d", domain.ErrItemSetMismatch, ex.ID, len(keyed), len(ex.Items))
	}
	for _, id := range ex.Items {
		if !keyed[id] {
			return fmt.Errorf("%w: exercise %s presents unkeyed item %q", domain.ErrItemSetMismatch, ex.ID, id)
		}
	}
	return nil
}
