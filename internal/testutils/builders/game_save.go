// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
)

// GameSaveBuilder provides a fluent interface for building test GameSave instances
type GameSaveBuilder struct {
	gs *save.GameSave
}

// NewGameSaveBuilder creates a new builder with no saved objects
func NewGameSaveBuilder() *GameSaveBuilder {
	gs := save.NewGameSave("game-test-1")
	gs.SavedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &GameSaveBuilder{gs: gs}
}

// WithID sets the save slot ID
func (b *GameSaveBuilder) WithID(id string) *GameSaveBuilder {
	b.gs.ID = id
	return b
}

// WithSavedAt sets the save time
func (b *GameSaveBuilder) WithSavedAt(at time.Time) *GameSaveBuilder {
	b.gs.SavedAt = at
	return b
}

// WithInventory stores slots for saveID in the persistent scene
func (b *GameSaveBuilder) WithInventory(saveID string, slots ...inventory.Slot) *GameSaveBuilder {
	return b.WithSceneInventory(saveID, save.PersistentScene, slots...)
}

// WithSceneInventory stores slots for saveID under scene.
// The capture time is one minute before the save time.
func (b *GameSaveBuilder) WithSceneInventory(saveID, scene string, slots ...inventory.Slot) *GameSaveBuilder {
	obj, ok := b.gs.Objects[saveID]
	if !ok {
		obj = save.NewObjectSave()
		b.gs.Objects[saveID] = obj
	}

	stored := make([]inventory.Slot, len(slots))
	copy(stored, slots)
	obj.Scenes[scene] = &save.SceneSave{
		Inventory:  stored,
		CapturedAt: b.gs.SavedAt.Add(-time.Minute),
	}
	return b
}

// Build returns the constructed GameSave
func (b *GameSaveBuilder) Build() *save.GameSave {
	return b.gs
}
