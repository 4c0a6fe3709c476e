package inventory

import (
	"context"
	"time"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	inv "github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

//go:generate mockgen -destination=mock/mock_service.go -package=inventorymock github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory Service

// Service is the inventory session used by the network surfaces
type Service interface {
	// Session lifecycle
	Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error)

	// Queries
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// Mutations
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	PickUpItem(ctx context.Context, input *PickUpItemInput) (*PickUpItemOutput, error)
	AddItemAtIndex(ctx context.Context, input *AddItemAtIndexInput) (*AddItemAtIndexOutput, error)
	RemoveOne(ctx context.Context, input *RemoveOneInput) (*RemoveOneOutput, error)
	RemoveSelectedByOne(ctx context.Context, input *RemoveSelectedByOneInput) (*RemoveSelectedByOneOutput, error)
	RemoveAll(ctx context.Context, input *RemoveAllInput) (*RemoveAllOutput, error)
	SwapSlots(ctx context.Context, input *SwapSlotsInput) (*SwapSlotsOutput, error)

	// Selection
	SetSelection(ctx context.Context, input *SetSelectionInput) (*SetSelectionOutput, error)
	ClearSelection(ctx context.Context, input *ClearSelectionInput) (*ClearSelectionOutput, error)

	// Persistence
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)
	ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error)
	DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error)
	// Autosave saves to the default slot; it fits savegame.SaveFunc
	Autosave(ctx context.Context) error

	// Change feed
	Subscribe(fn inv.Subscriber) string
	Unsubscribe(id string) error
}

// State is a consistent view of the inventory taken under the session lock
type State struct {
	SaveID    string
	Location  entities.Location
	Capacity  int
	Slots     []entities.Slot
	Selection entities.Selection
}

// InitializeInput defines the request for starting a session
type InitializeInput struct {
	// GameID is the save slot to load; empty uses the default slot
	GameID string
}

// InitializeOutput defines the response for starting a session
type InitializeOutput struct {
	Loaded        bool
	StartingItems int
	Inventory     *State
}

// GetInventoryInput defines the request for reading the inventory
type GetInventoryInput struct{}

// GetInventoryOutput defines the response for reading the inventory
type GetInventoryOutput struct {
	Inventory *State
}

// GetItemInput defines the request for a catalog lookup
type GetItemInput struct {
	ItemCode int
}

// GetItemOutput defines the response for a catalog lookup
type GetItemOutput struct {
	Item entities.ItemDescriptor
}

// ListItemsInput defines the request for listing the catalog
type ListItemsInput struct {
	// Category filters the list when set
	Category entities.ItemCategory
}

// ListItemsOutput defines the response for listing the catalog
type ListItemsOutput struct {
	Items []entities.ItemDescriptor
}

// AddItemInput defines the request for adding an item
type AddItemInput struct {
	ItemCode int
	Quantity int
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	// Added is false when the inventory was full
	Added     bool
	Inventory *State
}

// PickUpItemInput defines the request for picking up a world object
type PickUpItemInput struct {
	ItemCode   int
	Quantity   int
	SourceID   string
	SourceType string
}

// PickUpItemOutput defines the response for picking up a world object
type PickUpItemOutput struct {
	// Added is false when the inventory was full; the source is gone either way
	Added     bool
	Inventory *State
}

// AddItemAtIndexInput defines the request for adding at a slot
type AddItemAtIndexInput struct {
	ItemCode int
	Index    int
	Quantity int
}

// AddItemAtIndexOutput defines the response for adding at a slot
type AddItemAtIndexOutput struct {
	Inventory *State
}

// RemoveOneInput defines the request for removing one item from a slot
type RemoveOneInput struct {
	Index int
}

// RemoveOneOutput defines the response for removing one item from a slot
type RemoveOneOutput struct {
	Inventory *State
}

// RemoveSelectedByOneInput defines the request for consuming the selected item
type RemoveSelectedByOneInput struct{}

// RemoveSelectedByOneOutput defines the response for consuming the selected item
type RemoveSelectedByOneOutput struct {
	Inventory *State
}

// RemoveAllInput defines the request for emptying a slot
type RemoveAllInput struct {
	Index int
}

// RemoveAllOutput defines the response for emptying a slot
type RemoveAllOutput struct {
	Inventory *State
}

// SwapSlotsInput defines the request for swapping two slots
type SwapSlotsInput struct {
	From int
	To   int
}

// SwapSlotsOutput defines the response for swapping two slots
type SwapSlotsOutput struct {
	Inventory *State
}

// SetSelectionInput defines the request for selecting a slot
type SetSelectionInput struct {
	ItemCode int
	Index    int
}

// SetSelectionOutput defines the response for selecting a slot
type SetSelectionOutput struct {
	Selection entities.Selection
	// Item is nil when the selected code is not in the catalog
	Item *entities.ItemDescriptor
}

// ClearSelectionInput defines the request for clearing the selection
type ClearSelectionInput struct{}

// ClearSelectionOutput defines the response for clearing the selection
type ClearSelectionOutput struct {
	Selection entities.Selection
}

// SaveGameInput defines the request for saving
type SaveGameInput struct {
	// GameID is the save slot; empty uses the default slot
	GameID string
}

// SaveGameOutput defines the response for saving
type SaveGameOutput struct {
	GameID  string
	SavedAt time.Time
}

// LoadGameInput defines the request for loading
type LoadGameInput struct {
	// GameID is the save slot; empty uses the default slot
	GameID string
}

// LoadGameOutput defines the response for loading
type LoadGameOutput struct {
	GameID    string
	SavedAt   time.Time
	Inventory *State
}

// ListSavesInput defines the request for listing save slots
type ListSavesInput struct{}

// ListSavesOutput defines the response for listing save slots
type ListSavesOutput struct {
	GameIDs []string
}

// DeleteSaveInput defines the request for deleting a save slot
type DeleteSaveInput struct {
	GameID string
}

// DeleteSaveOutput defines the response for deleting a save slot
type DeleteSaveOutput struct{}
