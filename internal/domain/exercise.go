package domain

// ExerciseKind identifies the structural shape of an exercise's answer.
// The set is closed: every comparator and matcher switches over it.
type ExerciseKind string

const (
	KindCode       ExerciseKind = "code"       // free-form source code
	KindCommand    ExerciseKind = "command"    // terminal command line
	KindFreeForm   ExerciseKind = "free_form"  // open-ended prompt, no fixed answer
	KindSequence   ExerciseKind = "sequence"   // reorder items into the correct order
	KindMatch      ExerciseKind = "match"      // pair source items with targets
	KindCategorize ExerciseKind = "categorize" // sort items into categories
)

// Valid reports whether the kind is one of the known values
func (k ExerciseKind) Valid() bool {
	switch k {
	case KindCode, KindCommand, KindFreeForm, KindSequence, KindMatch, KindCategorize:
		return true
	}
	return false
}

// Language identifies the language family of a code exercise
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangMarkup     Language = "markup"  // HTML-like
	LangStyling    Language = "styling" // CSS-like; lint tier deferred
)

// Valid reports whether the language is one of the known families
func (l Language) Valid() bool {
	switch l {
	case LangPython, LangJavaScript, LangMarkup, LangStyling:
		return true
	}
	return false
}

// HasBracketGrammar reports whether bracket balance is meaningful for the
// language. Markup uses tag checking instead.
func (l Language) HasBracketGrammar() bool {
	return l != LangMarkup
}

// PatternKind tags how an expected pattern should be interpreted
type PatternKind string

const (
	// PatternAuto infers regex-ness from the text: a leading ^, trailing $,
	// or any backslash means the pattern is tried as a regex first.
	PatternAuto    PatternKind = "auto"
	PatternLiteral PatternKind = "literal"
	PatternRegex   PatternKind = "regex"
)

// Pattern is one expected answer for a command exercise. Content authors may
// tag the kind explicitly; untagged patterns keep the inference behavior.
type Pattern struct {
	Text string
	Kind PatternKind
}

// AnswerKey is the authoritative correct-answer structure for one exercise
// variant. The implementations form a closed set: comparators switch over
// the concrete types and the unexported marker keeps the set closed.
type AnswerKey interface {
	answerKey()
	// Size returns the number of scoreable entries in the key
	Size() int
}

// SequenceKey is the correct ordering of item IDs
type SequenceKey []string

func (SequenceKey) answerKey() {}

// Size returns the number of positions in the sequence
func (k SequenceKey) Size() int { return len(k) }

// MatchKey maps each source item ID to its correct target item ID
type MatchKey map[string]string

func (MatchKey) answerKey() {}

// Size returns the number of keyed pairs
func (k MatchKey) Size() int { return len(k) }

// CategorizeKey maps each item ID to its correct category ID
type CategorizeKey map[string]string

func (CategorizeKey) answerKey() {}

// Size returns the number of keyed items
func (k CategorizeKey) Size() int { return len(k) }
