// Package semantic consumes the external server-side validator (Tier 2).
// This engine does not implement semantic validation; it owns only the
// consumption contract and the policy for merging the remote result with
// the local tier's warnings.
package semantic

import (
	"context"

	"github.com/learnloop/engine/internal/domain"
)

// Request is the payload sent to the external semantic validator
type Request struct {
	Code             string   `json:"code"`
	Language         string   `json:"language"`
	ExpectedPatterns []string `json:"expectedPatterns,omitempty"`
	SkillLevel       string   `json:"skillLevel"`
}

// Result is the semantic validator's verdict. The remote side is solely
// responsible for IsCorrect and Status; the local tier never assigns
// Correct or MajorIssues.
type Result struct {
	IsCorrect bool                    `json:"isCorrect"`
	Status    domain.SubmissionStatus `json:"status"`
	Issues    []domain.FeedbackIssue  `json:"issues"`
	Positives []string                `json:"positives,omitempty"`
	NextStep  string                  `json:"nextStep,omitempty"`
}

// Validator reviews code semantically. Implementations wrap the network
// round trip; cancellation is driven by the caller's context.
type Validator interface {
	Review(ctx context.Context, req *Request) (*Result, error)
}
