package testhelpers

import (
	"context"
	"sync"

	"wheelbot/domain/entities"

	"github.com/goccy/go-json"
)

// MemoryGuildStateRepository is an in-memory GuildStateRepository fake for
// unit tests. Documents are deep-copied through JSON on every Get/Save so
// tests observe the same whole-document semantics as the real store, and a
// mutex serializes access the way the row lock does in production.
type MemoryGuildStateRepository struct {
	mu     sync.Mutex
	states map[int64][]byte

	// GetCalls and SaveCalls count repository round trips for assertions
	GetCalls  int
	SaveCalls int
}

// NewMemoryGuildStateRepository creates an empty in-memory repository
func NewMemoryGuildStateRepository() *MemoryGuildStateRepository {
	return &MemoryGuildStateRepository{
		states: make(map[int64][]byte),
	}
}

// Get loads the guild document, inserting defaults on first access
func (r *MemoryGuildStateRepository) Get(ctx context.Context, guildID int64) (*entities.GuildState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.GetCalls++

	raw, ok := r.states[guildID]
	if !ok {
		state := entities.NewGuildState()
		encoded, err := json.Marshal(state)
		if err != nil {
			return nil, err
		}
		r.states[guildID] = encoded
		return state, nil
	}

	var state entities.GuildState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	state.Normalize()
	return &state, nil
}

// Save writes the whole guild document back
func (r *MemoryGuildStateRepository) Save(ctx context.Context, guildID int64, state *entities.GuildState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SaveCalls++

	encoded, err := json.Marshal(state)
	if err != nil {
		return err
	}
	r.states[guildID] = encoded
	return nil
}

// Seen reports whether a guild document exists in the store
func (r *MemoryGuildStateRepository) Seen(guildID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.states[guildID]
	return ok
}
