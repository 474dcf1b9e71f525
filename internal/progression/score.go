package progression

import (
	"github.com/learnloop/engine/internal/domain"
)

// Answer is a candidate answer for one of the structured exercise variants.
// Like domain.AnswerKey it is a closed tagged union: scoring switches over
// the concrete types, and the unexported marker keeps the set closed so a
// new variant is a compile-time-visible change.
type Answer interface {
	answer()
}

// SequenceAnswer is the learner's current ordering of item IDs
type SequenceAnswer []string

func (SequenceAnswer) answer() {}

// MatchAnswer is the learner's (possibly partial) source-to-target mapping
type MatchAnswer map[string]string

func (MatchAnswer) answer() {}

// CategorizeAnswer is the learner's (possibly partial) item-to-category mapping
type CategorizeAnswer map[string]string

func (CategorizeAnswer) answer() {}

// Score compares a candidate answer against the answer key and returns the
// number of correct entries and the key's total. A nil key, or an answer of
// the wrong shape for the key, is a content-authoring fault: it scores 0 of
// 0 (unscoreable) rather than failing, since the learner is not at fault.
//
// Extra entries in the candidate that the key does not mention are ignored.
func Score(answer Answer, key domain.AnswerKey) (correct, total int) {
	if key == nil {
		return 0, 0
	}

	switch k := key.(type) {
	case domain.SequenceKey:
		candidate, ok := answer.(SequenceAnswer)
		if !ok {
			return 0, 0
		}
		for i, id := range k {
			if i < len(candidate) && candidate[i] == id {
				correct++
			}
		}
		return correct, len(k)

	case domain.MatchKey:
		candidate, ok := answer.(MatchAnswer)
		if !ok {
			return 0, 0
		}
		for src, tgt := range k {
			if candidate[src] == tgt {
				correct++
			}
		}
		return correct, len(k)

	case domain.CategorizeKey:
		candidate, ok := answer.(CategorizeAnswer)
		if !ok {
			return 0, 0
		}
		for item, cat := range k {
			if candidate[item] == cat {
				correct++
			}
		}
		return correct, len(k)
	}

	return 0, 0
}
