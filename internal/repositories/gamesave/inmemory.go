package gamesave

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// InMemoryRepository implements Repository using process memory.
// Saves are stored encoded so callers never share state with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a save slot
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("game save %s not found", input.ID).WithMeta("save_id", input.ID)
	}

	var gs save.GameSave
	if err := json.Unmarshal(data, &gs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode game save")
	}
	return &GetOutput{Save: &gs}, nil
}

// Update writes a save slot
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Save == nil {
		return nil, errors.InvalidArgument(errSaveNil)
	}
	if input.Save.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	data, err := json.Marshal(input.Save)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode game save")
	}

	r.mu.Lock()
	r.store[input.Save.ID] = data
	r.mu.Unlock()

	return &UpdateOutput{Save: input.Save}, nil
}

// Delete removes a save slot
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("game save %s not found", input.ID).WithMeta("save_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns stored slot IDs in ascending order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}
