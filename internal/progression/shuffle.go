package progression

import (
	"math/rand"

	"github.com/learnloop/engine/internal/domain"
)

// DefaultShuffleRetries bounds how many times Shuffle rerolls before
// accepting an order that coincides with the answer key. The odds of
// hitting the bound shrink factorially with item count, so a coincidental
// pre-solved presentation is accepted as a rare, harmless outcome.
const DefaultShuffleRetries = 10

// Shuffle returns the items in a random order that differs from the key's
// order, retrying up to maxRetries times. It never mutates its input.
// Single-item (or empty) inputs are returned as-is: no differing order
// exists.
func Shuffle(items []string, key domain.SequenceKey, maxRetries int) []string {
	out := make([]string, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}
	if maxRetries <= 0 {
		maxRetries = DefaultShuffleRetries
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		rand.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		if !sameOrder(out, key) {
			return out
		}
	}
	return out
}

func sameOrder(items []string, key domain.SequenceKey) bool {
	if len(items) != len(key) {
		return false
	}
	for i := range items {
		if items[i] != key[i] {
			return false
		}
	}
	return true
}
