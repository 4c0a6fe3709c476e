package v1alpha1

// Slot is one inventory slot on the wire
type Slot struct {
	ItemCode int `json:"item_code"`
	Quantity int `json:"quantity"`
}

// Selection is the active slot on the wire; -1 means none
type Selection struct {
	ItemCode int `json:"item_code"`
	Index    int `json:"index"`
}

// Inventory is the full inventory state
type Inventory struct {
	SaveID    string    `json:"save_id"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	Slots     []Slot    `json:"slots"`
	Selection Selection `json:"selection"`
}

// Item is a catalog entry
type Item struct {
	Code            int     `json:"code"`
	Category        string  `json:"category"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	LongDescription string  `json:"long_description,omitempty"`
	Sprite          string  `json:"sprite,omitempty"`
	UseGridRadius   int     `json:"use_grid_radius,omitempty"`
	UseRadius       float64 `json:"use_radius,omitempty"`
	IsStartingItem  bool    `json:"is_starting_item,omitempty"`
	CanBePickedUp   bool    `json:"can_be_picked_up,omitempty"`
	CanBeDropped    bool    `json:"can_be_dropped,omitempty"`
	CanBeEaten      bool    `json:"can_be_eaten,omitempty"`
	CanBeCarried    bool    `json:"can_be_carried,omitempty"`
}

type GetInventoryRequest struct{}

type GetInventoryResponse struct {
	Inventory *Inventory `json:"inventory"`
}

type AddItemRequest struct {
	ItemCode int `json:"item_code"`
	Quantity int `json:"quantity"`
}

type AddItemResponse struct {
	Added     bool       `json:"added"`
	Inventory *Inventory `json:"inventory"`
}

type PickUpItemRequest struct {
	ItemCode   int    `json:"item_code"`
	Quantity   int    `json:"quantity"`
	SourceID   string `json:"source_id"`
	SourceType string `json:"source_type,omitempty"`
}

type PickUpItemResponse struct {
	Added     bool       `json:"added"`
	Inventory *Inventory `json:"inventory"`
}

type AddItemAtIndexRequest struct {
	ItemCode int `json:"item_code"`
	Index    int `json:"index"`
	Quantity int `json:"quantity"`
}

type RemoveOneRequest struct {
	Index int `json:"index"`
}

type RemoveSelectedRequest struct{}

type RemoveAllRequest struct {
	Index int `json:"index"`
}

type SwapSlotsRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// InventoryResponse is returned by every slot mutation
type InventoryResponse struct {
	Inventory *Inventory `json:"inventory"`
}

type SetSelectionRequest struct {
	ItemCode int `json:"item_code"`
	Index    int `json:"index"`
}

type SetSelectionResponse struct {
	Selection Selection `json:"selection"`
	Item      *Item     `json:"item,omitempty"`
}

type ClearSelectionRequest struct{}

type ClearSelectionResponse struct {
	Selection Selection `json:"selection"`
}

type GetItemRequest struct {
	ItemCode int `json:"item_code"`
}

type GetItemResponse struct {
	Item *Item `json:"item"`
}

type ListItemsRequest struct {
	Category string `json:"category,omitempty"`
}

type ListItemsResponse struct {
	Items []*Item `json:"items"`
}

type SaveGameRequest struct {
	GameID string `json:"game_id,omitempty"`
}

type SaveGameResponse struct {
	GameID string `json:"game_id"`
	// SavedAt is unix seconds
	SavedAt int64 `json:"saved_at"`
}

type LoadGameRequest struct {
	GameID string `json:"game_id,omitempty"`
}

type LoadGameResponse struct {
	GameID    string     `json:"game_id"`
	SavedAt   int64      `json:"saved_at"`
	Inventory *Inventory `json:"inventory"`
}

type ListSavesRequest struct{}

type ListSavesResponse struct {
	GameIDs []string `json:"game_ids"`
}

type DeleteSaveRequest struct {
	GameID string `json:"game_id"`
}

type DeleteSaveResponse struct{}
