// Package savegame coordinates saving and loading every registered saveable
// into a single game save slot.
package savegame

//go:generate mockgen -destination=mock/mock_saveable.go -package=savegamemock github.com/KirkDiggler/rpg-inventory/internal/savegame Saveable

import (
	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
)

// PersistentScene is the scope for state that survives scene transitions
const PersistentScene = save.PersistentScene

// Saveable is implemented by anything whose state goes into a game save.
// SaveID must be stable across runs; it keys the object's entry in the save.
type Saveable interface {
	SaveID() string

	// Save returns the object's state for every scope it persists
	Save() (*save.ObjectSave, error)

	// Load restores state from gs. An object with no entry in gs keeps its
	// current state.
	Load(gs *save.GameSave) error

	// StoreScene is called before leaving scene
	StoreScene(scene string)

	// RestoreScene is called after entering scene
	RestoreScene(scene string)
}
