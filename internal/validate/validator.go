// Package validate orchestrates the local (Tier 1) validation pass: balance
// checking plus heuristic lint, folded into a single blocking decision.
package validate

import (
	"strings"

	"github.com/learnloop/engine/internal/checker"
	"github.com/learnloop/engine/internal/domain"
	"github.com/learnloop/engine/internal/lint"
)

// Validator runs the local validation tiers for code exercises
type Validator struct {
	balance *checker.BalanceChecker
	linter  *lint.Linter
}

// New creates a tiered validator
func New() *Validator {
	return &Validator{
		balance: checker.New(),
		linter:  lint.New(),
	}
}

// Validate runs every local check for the language and folds the results
// into one outcome. Pure function of its inputs: no I/O, no shared state.
//
// An outcome with warnings or suggestions only is non-blocking: the learner
// is "almost there" and the caller should go on to the semantic tier.
func (v *Validator) Validate(code string, language domain.Language) domain.ValidationOutcome {
	if strings.TrimSpace(code) == "" {
		return domain.NewValidationOutcome([]domain.FeedbackIssue{{
			Kind:    domain.KindError,
			Message: "No code entered",
			Hint:    "Write some code before submitting.",
		}})
	}

	var issues []domain.FeedbackIssue

	if language == domain.LangMarkup {
		issues = append(issues, v.balance.CheckTags(code)...)
	} else if language.HasBracketGrammar() {
		if issue := v.balance.Check(code); issue != nil {
			issues = append(issues, *issue)
		}
	}

	issues = append(issues, v.linter.Lint(code, language)...)

	return domain.NewValidationOutcome(issues)
}

// Status maps a local outcome onto the submission taxonomy. The local tier
// only ever produces the middle two values; Correct and MajorIssues belong
// to the semantic tier.
func Status(outcome domain.ValidationOutcome) domain.SubmissionStatus {
	if outcome.Blocked {
		return domain.StatusNeedsWork
	}
	return domain.StatusAlmostThere
}
