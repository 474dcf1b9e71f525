package content

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/learnloop/engine/internal/domain"
)

// Registry provides concurrent read access to loaded exercises
type Registry struct {
	loader *Loader
	logger *slog.Logger

	mu        sync.RWMutex
	exercises map[string]*Exercise
}

// NewRegistry creates a registry backed by the given loader
func NewRegistry(loader *Loader, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		loader:    loader,
		logger:    logger,
		exercises: make(map[string]*Exercise),
	}
}

// Load loads every exercise into memory. Files that fail authoring
// validation are logged for operators and skipped; they are content bugs,
// not reasons to take the rest of the catalog down.
func (r *Registry) Load() error {
	exercises, errs := r.loader.LoadAll()
	for _, err := range errs {
		r.logger.Error("rejecting exercise", "err", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.exercises = make(map[string]*Exercise, len(exercises))
	for _, ex := range exercises {
		if _, dup := r.exercises[ex.ID]; dup {
			r.logger.Error("duplicate exercise id", "id", ex.ID)
			continue
		}
		r.exercises[ex.ID] = ex
	}
	return nil
}

// Reload re-reads everything from disk (useful for content development)
func (r *Registry) Reload() error {
	return r.Load()
}

// Get returns an exercise by ID
func (r *Registry) Get(id string) (*Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.exercises[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, id)
	}
	return ex, nil
}

// List returns all exercise IDs in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.exercises))
	for id := range r.exercises {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
