// Package save defines the persisted shape of a game save.
//
// A GameSave holds one ObjectSave per registered saveable, keyed by the
// saveable's stable save ID. Each ObjectSave holds one SceneSave per scope.
// State that follows the player between scenes lives under PersistentScene.
package save

import (
	"time"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
)

// PersistentScene is the scope for state that survives scene transitions
const PersistentScene = "PersistentScene"

// SceneSave is the state one saveable stores for one scope
type SceneSave struct {
	Inventory  []inventory.Slot `json:"inventory,omitempty"`
	CapturedAt time.Time        `json:"captured_at"`
}

// ObjectSave is everything one saveable stores, keyed by scope
type ObjectSave struct {
	Scenes map[string]*SceneSave `json:"scenes"`
}

// NewObjectSave creates an empty object save
func NewObjectSave() *ObjectSave {
	return &ObjectSave{Scenes: make(map[string]*SceneSave)}
}

// GameSave is one save slot
type GameSave struct {
	ID      string                 `json:"id"`
	SavedAt time.Time              `json:"saved_at"`
	Objects map[string]*ObjectSave `json:"objects"`
}

// NewGameSave creates an empty save for the given slot ID
func NewGameSave(id string) *GameSave {
	return &GameSave{
		ID:      id,
		Objects: make(map[string]*ObjectSave),
	}
}

// Scene returns the scene save stored by saveID under scope
func (g *GameSave) Scene(saveID, scope string) (*SceneSave, bool) {
	if g == nil {
		return nil, false
	}
	obj, ok := g.Objects[saveID]
	if !ok || obj == nil {
		return nil, false
	}
	scene, ok := obj.Scenes[scope]
	if !ok || scene == nil {
		return nil, false
	}
	return scene, true
}
