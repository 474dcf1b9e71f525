// Package engine is the exercise validation and adaptive-feedback engine:
// tiered local code validation, fuzzy command matching and multi-variant
// exercise progression, with strictness calibrated to the learner's skill
// level. It is a library invoked by UI event handlers; rendering,
// persistence and transport belong to the caller.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/learnloop/engine/internal/config"
	"github.com/learnloop/engine/internal/content"
	"github.com/learnloop/engine/internal/domain"
	"github.com/learnloop/engine/internal/match"
	"github.com/learnloop/engine/internal/progression"
	"github.com/learnloop/engine/internal/semantic"
	"github.com/learnloop/engine/internal/validate"
)

// Re-exported value types callers build feedback UI from.
type (
	FeedbackIssue     = domain.FeedbackIssue
	ValidationOutcome = domain.ValidationOutcome
	MatchResult       = domain.MatchResult
	Pattern           = domain.Pattern
	SkillLevel        = domain.SkillLevel
	ExerciseKind      = domain.ExerciseKind
	Language          = domain.Language
	Session           = progression.Session
	SemanticResult    = semantic.Result
)

// Engine wires the validation tiers, the matcher, the exercise catalog and
// the external semantic validator behind one surface.
type Engine struct {
	cfg       *config.Config
	registry  *content.Registry
	validator *validate.Validator
	matcher   *match.Matcher
	semantic  *semantic.Service
	remote    semantic.Validator
	logger    *slog.Logger
}

// Option configures the engine
type Option func(*Engine)

// WithLogger sets the operator logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithSemanticValidator overrides the semantic tier, mainly for tests
func WithSemanticValidator(v semantic.Validator) Option {
	return func(e *Engine) { e.remote = v }
}

// New creates an engine from configuration. A nil config uses defaults,
// which disable the semantic tier.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		validator: validate.New(),
		matcher:   match.New(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.registry = content.NewRegistry(content.NewLoader(cfg.Content.Dir), e.logger)

	remote := e.remote
	if remote == nil && cfg.Semantic.BaseURL != "" {
		client := semantic.NewClient(semantic.ClientConfig{
			BaseURL: cfg.Semantic.BaseURL,
			Timeout: time.Duration(cfg.Semantic.TimeoutSeconds) * time.Second,
		})
		remote = semantic.NewResilientValidator(client, semantic.ResilientConfig{
			EnableCircuitBreaker: cfg.Semantic.CircuitBreaker,
			EnableRetry:          cfg.Semantic.Retry,
			EnableBulkhead:       cfg.Semantic.Bulkhead,
			EnableRateLimit:      cfg.Semantic.RateLimit,
			MaxConcurrent:        cfg.Semantic.MaxConcurrent,
			RatePerSecond:        cfg.Semantic.RatePerSecond,
			Logger:               e.logger,
		})
	}
	e.semantic = semantic.NewService(e.validator, remote, e.logger)

	return e, nil
}

// LoadContent loads the authored exercise catalog into memory
func (e *Engine) LoadContent() error {
	return e.registry.Load()
}

// Exercise returns an exercise definition by ID
func (e *Engine) Exercise(id string) (*content.Exercise, error) {
	return e.registry.Get(id)
}

// Exercises lists all loaded exercise IDs
func (e *Engine) Exercises() []string {
	return e.registry.List()
}

// ValidateCode runs the local tier and, when nothing blocks, the external
// semantic tier, returning the merged result.
func (e *Engine) ValidateCode(ctx context.Context, code string, language Language, patterns []string, skill SkillLevel) *SemanticResult {
	return e.semantic.ValidateAndMerge(ctx, code, language, patterns, skill)
}

// ValidateLocal runs only the local tier. Pure and synchronous.
func (e *Engine) ValidateLocal(code string, language Language) ValidationOutcome {
	return e.validator.Validate(code, language)
}

// MatchCommand tests a submitted command against the expected patterns
func (e *Engine) MatchCommand(input string, patterns []Pattern, skill SkillLevel, kind ExerciseKind) MatchResult {
	return e.matcher.Match(input, patterns, skill, kind)
}

// StartSession creates session state for a mounted exercise
func (e *Engine) StartSession(exerciseID string, skill SkillLevel) (*Session, error) {
	ex, err := e.registry.Get(exerciseID)
	if err != nil {
		return nil, err
	}
	return progression.NewSession(ex.Kind, skill, ex.Key, ex.Hints, e.logger), nil
}

// ShuffledItems returns an exercise's items in an order that differs from
// the answer key, for the presenting layer to lay out.
func (e *Engine) ShuffledItems(exerciseID string) ([]string, error) {
	ex, err := e.registry.Get(exerciseID)
	if err != nil {
		return nil, err
	}
	key, _ := ex.Key.(domain.SequenceKey)
	return progression.Shuffle(ex.Items, key, e.cfg.Shuffle.MaxRetries), nil
}
