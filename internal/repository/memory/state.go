package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/erasmus-survival/erasmusbot/internal/repository"
)

type stateRepository struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewStateRepository creates an in-memory StateRepository. Nothing survives
// process exit; it exists for tests and ephemeral runs.
func NewStateRepository() repository.StateRepository {
	return &stateRepository{values: make(map[string]json.RawMessage)}
}

func (r *stateRepository) Load(_ context.Context, key string) (json.RawMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	out := make(json.RawMessage, len(value))
	copy(out, value)
	return out, nil
}

func (r *stateRepository) Save(_ context.Context, key string, value json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	r.values[key] = stored
	return nil
}
