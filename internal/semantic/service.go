package semantic

import (
	"context"
	"log/slog"

	"github.com/learnloop/engine/internal/domain"
	"github.com/learnloop/engine/internal/validate"
)

// Service runs the local tier and, when nothing blocks, consults the
// external semantic validator and merges both results.
type Service struct {
	local  *validate.Validator
	remote Validator
	logger *slog.Logger
}

// NewService creates a semantic validation service. remote may be nil when
// no semantic tier is configured; the local outcome is returned as-is then.
func NewService(local *validate.Validator, remote Validator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{local: local, remote: remote, logger: logger}
}

// ValidateAndMerge validates code locally first. A blocking local error
// halts submission before any network round trip. Otherwise the remote
// validator is consulted and its result merged with the local warnings.
// Remote failure degrades to the local outcome rather than surfacing an
// error to the learner.
func (s *Service) ValidateAndMerge(ctx context.Context, code string, language domain.Language, patterns []string, skill domain.SkillLevel) *Result {
	local := s.local.Validate(code, language)
	if local.Blocked {
		return &Result{
			IsCorrect: false,
			Status:    domain.StatusNeedsWork,
			Issues:    local.Issues,
		}
	}

	if s.remote == nil {
		return localOnly(local)
	}

	remote, err := s.remote.Review(ctx, &Request{
		Code:             code,
		Language:         string(language),
		ExpectedPatterns: patterns,
		SkillLevel:       string(skill),
	})
	if err != nil {
		s.logger.Warn("semantic validator unavailable, using local result",
			"language", language,
			"err", err)
		return localOnly(local)
	}

	return Merge(local, remote)
}

// Merge prepends the local tier's non-error issues to the remote issues.
// The remote side owns IsCorrect and Status.
func Merge(local domain.ValidationOutcome, remote *Result) *Result {
	merged := make([]domain.FeedbackIssue, 0, len(local.Issues)+len(remote.Issues))
	for _, issue := range local.Issues {
		if !issue.IsError() {
			merged = append(merged, issue)
		}
	}
	merged = append(merged, remote.Issues...)

	return &Result{
		IsCorrect: remote.IsCorrect,
		Status:    remote.Status,
		Issues:    merged,
		Positives: remote.Positives,
		NextStep:  remote.NextStep,
	}
}

func localOnly(local domain.ValidationOutcome) *Result {
	return &Result{
		IsCorrect: false,
		Status:    validate.Status(local),
		Issues:    local.Issues,
	}
}
