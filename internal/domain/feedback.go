package domain

// IssueKind classifies the severity of a feedback issue
type IssueKind string

const (
	KindError      IssueKind = "error"      // blocks submission
	KindWarning    IssueKind = "warning"    // surfaced, non-blocking
	KindSuggestion IssueKind = "suggestion" // stylistic nudge
)

// FeedbackIssue is a single piece of feedback produced by a validator.
// It is an immutable value: constructed once, never mutated.
type FeedbackIssue struct {
	Kind        IssueKind `json:"kind"`
	Line        int       `json:"line,omitempty"` // 1-based; 0 means no line applies
	Message     string    `json:"message"`
	Explanation string    `json:"explanation,omitempty"`
	Hint        string    `json:"hint,omitempty"`
}

// IsError reports whether the issue blocks submission
func (i FeedbackIssue) IsError() bool {
	return i.Kind == KindError
}

// ValidationOutcome is the result of one local validation pass.
// Created fresh per call; the caller decides whether to persist it.
type ValidationOutcome struct {
	Blocked bool            `json:"blocked"`
	Issues  []FeedbackIssue `json:"issues"`
}

// NewValidationOutcome derives Blocked from the issue list:
// blocked iff at least one issue is an error.
func NewValidationOutcome(issues []FeedbackIssue) ValidationOutcome {
	blocked := false
	for _, issue := range issues {
		if issue.IsError() {
			blocked = true
			break
		}
	}
	return ValidationOutcome{Blocked: blocked, Issues: issues}
}

// MatchResult is the outcome of matching a submitted command string
type MatchResult struct {
	Matched  bool   `json:"matched"`
	NearMiss string `json:"near_miss,omitempty"` // the pattern the learner probably meant
	Feedback string `json:"feedback,omitempty"`
}

// SubmissionStatus is the four-value status taxonomy for a submission.
// The local tier only ever produces AlmostThere and NeedsWork; Correct and
// MajorIssues are assigned by the external semantic tier.
type SubmissionStatus string

const (
	StatusCorrect     SubmissionStatus = "correct"
	StatusAlmostThere SubmissionStatus = "almost_there"
	StatusNeedsWork   SubmissionStatus = "needs_work"
	StatusMajorIssues SubmissionStatus = "major_issues"
)
