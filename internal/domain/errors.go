package domain

import "errors"

// -----------------------------------------------------------------------------
// Domain Errors
// These represent content-authoring and configuration faults. They are logged
// for operators and degrade silently; learners never see them as errors.
// -----------------------------------------------------------------------------

// Content authoring errors
var (
	ErrNoAnswerKey      = errors.New("exercise has no answer key")
	ErrKeyKindMismatch  = errors.New("answer key does not match exercise kind")
	ErrItemSetMismatch  = errors.New("answer key item IDs do not match presented items")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// Input errors
var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrInvalidInput    = errors.New("invalid input")
)

// Semantic tier errors
var (
	ErrSemanticUnavailable = errors.New("semantic validator unavailable")
)
