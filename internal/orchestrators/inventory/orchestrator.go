// Package inventory implements the inventory session orchestrator. It owns the
// single lock that serializes every inventory call coming from the network
// surfaces and the autosave schedule.
package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	inv "github.com/KirkDiggler/rpg-inventory/internal/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/savegame"
)

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	Manager *inv.Manager
	Catalog *catalog.Catalog
	Saves   *savegame.Manager

	// DefaultGameID is used when a request names no save slot
	DefaultGameID string
	// GrantStartingItems fills a fresh inventory with the catalog's starting
	// items when Initialize finds no save
	GrantStartingItems bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Manager == nil {
		vb.RequiredField("Manager")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Saves == nil {
		vb.RequiredField("Saves")
	}
	errors.ValidateRequired("DefaultGameID", c.DefaultGameID, vb)

	return vb.Build()
}

// Pickup is a world object the player collected
type Pickup struct {
	ID   string
	Type string
}

// GetID returns the world object's ID
func (p *Pickup) GetID() string { return p.ID }

// GetType returns the world object's type
func (p *Pickup) GetType() string { return p.Type }

type orchestrator struct {
	mu            sync.Mutex
	manager       *inv.Manager
	catalog       *catalog.Catalog
	saves         *savegame.Manager
	defaultGameID string
	grantStarting bool
}

// NewOrchestrator creates a new inventory orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		manager:       cfg.Manager,
		catalog:       cfg.Catalog,
		saves:         cfg.Saves,
		defaultGameID: cfg.DefaultGameID,
		grantStarting: cfg.GrantStartingItems,
	}, nil
}

// Initialize loads the save slot, or grants starting items when the slot is
// missing or holds nothing for this inventory
func (o *orchestrator) Initialize(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gameID := o.gameID(input.GameID)

	o.mu.Lock()
	defer o.mu.Unlock()

	output := &InitializeOutput{}

	gs, err := o.saves.LoadGame(ctx, gameID)
	switch {
	case err == nil && o.manager.HasSave(gs):
		output.Loaded = true
	case err == nil:
		slog.InfoContext(ctx, "save has no inventory, starting fresh",
			"game_id", gameID,
			"save_id", o.manager.SaveID())
	case errors.IsNotFound(err):
		slog.InfoContext(ctx, "no save found, starting fresh", "game_id", gameID)
	default:
		return nil, errors.Wrapf(err, "failed to initialize from %s", gameID)
	}

	if !output.Loaded && o.grantStarting {
		output.StartingItems = o.manager.GrantStartingItems()
	}

	output.Inventory = o.state()
	return output, nil
}

func (o *orchestrator) GetInventory(_ context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetInventoryOutput{Inventory: o.state()}, nil
}

func (o *orchestrator) GetItem(_ context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("item_code", input.ItemCode, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	desc, ok := o.catalog.Lookup(input.ItemCode)
	if !ok {
		return nil, errors.NotFoundf("item %d not found", input.ItemCode).WithMeta("item_code", input.ItemCode)
	}

	return &GetItemOutput{Item: desc}, nil
}

func (o *orchestrator) ListItems(_ context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Category != "" && !input.Category.IsValid() {
		return nil, errors.InvalidArgumentf("unknown category %q", input.Category)
	}

	items := make([]entities.ItemDescriptor, 0, o.catalog.Len())
	for _, code := range o.catalog.Codes() {
		desc, _ := o.catalog.Lookup(code)
		if input.Category != "" && desc.Category != input.Category {
			continue
		}
		items = append(items, desc)
	}

	return &ListItemsOutput{Items: items}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("item_code", input.ItemCode, vb)
	errors.ValidatePositive("quantity", input.Quantity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	added := o.manager.TryAddItem(input.ItemCode, input.Quantity)
	o.manager.AddItem(input.ItemCode, input.Quantity)

	slog.DebugContext(ctx, "add item",
		"item_code", input.ItemCode,
		"quantity", input.Quantity,
		"added", added)

	return &AddItemOutput{Added: added, Inventory: o.state()}, nil
}

func (o *orchestrator) PickUpItem(ctx context.Context, input *PickUpItemInput) (*PickUpItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("item_code", input.ItemCode, vb)
	errors.ValidatePositive("quantity", input.Quantity, vb)
	errors.ValidateRequired("source_id", input.SourceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	source := &Pickup{ID: input.SourceID, Type: input.SourceType}
	if source.Type == "" {
		source.Type = "pickup"
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	added := o.manager.AddItemFromWorld(input.ItemCode, input.Quantity, source)

	slog.DebugContext(ctx, "picked up item",
		"item_code", input.ItemCode,
		"source_id", input.SourceID,
		"added", added)

	return &PickUpItemOutput{Added: added, Inventory: o.state()}, nil
}

func (o *orchestrator) AddItemAtIndex(_ context.Context, input *AddItemAtIndexInput) (*AddItemAtIndexOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("item_code", input.ItemCode, vb)
	errors.ValidatePositive("quantity", input.Quantity, vb)
	errors.ValidateIndex("index", input.Index, o.manager.Capacity(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.manager.AddItemAtIndex(input.ItemCode, input.Index, input.Quantity)
	return &AddItemAtIndexOutput{Inventory: o.state()}, nil
}

func (o *orchestrator) RemoveOne(_ context.Context, input *RemoveOneInput) (*RemoveOneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.validateIndex("index", input.Index); err != nil {
		return nil, err
	}

	o.manager.RemoveOneAtIndex(input.Index)
	return &RemoveOneOutput{Inventory: o.state()}, nil
}

func (o *orchestrator) RemoveSelectedByOne(_ context.Context, input *RemoveSelectedByOneInput) (*RemoveSelectedByOneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	sel := o.manager.Selection()
	if !sel.IsSelected() {
		return nil, errors.FailedPrecondition("no slot is selected")
	}
	if sel.Index < 0 || sel.Index >= o.manager.Capacity() {
		return nil, errors.FailedPreconditionf("selected index %d is outside the inventory", sel.Index).
			WithMeta("index", sel.Index)
	}

	o.manager.RemoveSelectedItemByOne()
	return &RemoveSelectedByOneOutput{Inventory: o.state()}, nil
}

func (o *orchestrator) RemoveAll(_ context.Context, input *RemoveAllInput) (*RemoveAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.validateIndex("index", input.Index); err != nil {
		return nil, err
	}

	o.manager.RemoveAllAtIndex(input.Index)
	return &RemoveAllOutput{Inventory: o.state()}, nil
}

func (o *orchestrator) SwapSlots(_ context.Context, input *SwapSlotsInput) (*SwapSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	vb := errors.NewValidationBuilder()
	errors.ValidateIndex("from", input.From, o.manager.Capacity(), vb)
	errors.ValidateIndex("to", input.To, o.manager.Capacity(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.manager.SwapSlots(input.From, input.To)
	return &SwapSlotsOutput{Inventory: o.state()}, nil
}

func (o *orchestrator) SetSelection(_ context.Context, input *SetSelectionInput) (*SetSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("item_code", input.ItemCode, vb)
	errors.ValidateIndex("index", input.Index, o.manager.Capacity(), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.manager.SetSelection(input.ItemCode, input.Index)

	output := &SetSelectionOutput{Selection: o.manager.Selection()}
	if desc, ok := o.manager.SelectedDescriptor(); ok {
		output.Item = &desc
	}
	return output, nil
}

func (o *orchestrator) ClearSelection(_ context.Context, input *ClearSelectionInput) (*ClearSelectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.manager.ClearSelection()
	return &ClearSelectionOutput{Selection: o.manager.Selection()}, nil
}

func (o *orchestrator) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gameID := o.gameID(input.GameID)

	o.mu.Lock()
	defer o.mu.Unlock()

	gs, err := o.saves.SaveGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save game")
	}

	return &SaveGameOutput{GameID: gs.ID, SavedAt: gs.SavedAt}, nil
}

func (o *orchestrator) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gameID := o.gameID(input.GameID)

	o.mu.Lock()
	defer o.mu.Unlock()

	gs, err := o.saves.LoadGame(ctx, gameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load game")
	}

	return &LoadGameOutput{
		GameID:    gs.ID,
		SavedAt:   gs.SavedAt,
		Inventory: o.state(),
	}, nil
}

func (o *orchestrator) ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ids, err := o.saves.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSavesOutput{GameIDs: ids}, nil
}

func (o *orchestrator) DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.GameID == "" {
		return nil, errors.InvalidArgument("game_id is required")
	}

	if err := o.saves.DeleteGame(ctx, input.GameID); err != nil {
		return nil, err
	}
	return &DeleteSaveOutput{}, nil
}

// Subscribe registers fn for change events. fn runs while the session lock
// is held and must not call back into the service.
func (o *orchestrator) Subscribe(fn inv.Subscriber) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.manager.Subscribe(fn)
}

func (o *orchestrator) Unsubscribe(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.manager.Unsubscribe(id)
}

// Autosave saves to the default slot. It matches savegame.SaveFunc.
func (o *orchestrator) Autosave(ctx context.Context) error {
	_, err := o.SaveGame(ctx, &SaveGameInput{})
	return err
}

func (o *orchestrator) gameID(requested string) string {
	if requested != "" {
		return requested
	}
	return o.defaultGameID
}

func (o *orchestrator) validateIndex(field string, index int) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateIndex(field, index, o.manager.Capacity(), vb)
	return vb.Build()
}

// state must be called with o.mu held
func (o *orchestrator) state() *State {
	return &State{
		SaveID:    o.manager.SaveID(),
		Location:  o.manager.Location(),
		Capacity:  o.manager.Capacity(),
		Slots:     o.manager.Slots(),
		Selection: o.manager.Selection(),
	}
}
