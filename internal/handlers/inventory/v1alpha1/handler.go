// Package v1alpha1 serves the inventory session over gRPC
package v1alpha1

import (
	"context"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

// HandlerConfig holds dependencies for the inventory handler
type HandlerConfig struct {
	InventoryService inventory.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.InventoryService == nil {
		return errors.InvalidArgument("inventory service is required")
	}
	return nil
}

// Handler implements InventoryServiceServer
type Handler struct {
	inventoryService inventory.Service
}

// NewHandler creates a new inventory handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		inventoryService: cfg.InventoryService,
	}, nil
}

var _ InventoryServiceServer = (*Handler)(nil)

// GetInventory returns the full inventory
func (h *Handler) GetInventory(ctx context.Context, _ *GetInventoryRequest) (*GetInventoryResponse, error) {
	out, err := h.inventoryService.GetInventory(ctx, &inventory.GetInventoryInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetInventoryResponse{Inventory: convertState(out.Inventory)}, nil
}

// AddItem stacks or places an item
func (h *Handler) AddItem(ctx context.Context, req *AddItemRequest) (*AddItemResponse, error) {
	out, err := h.inventoryService.AddItem(ctx, &inventory.AddItemInput{
		ItemCode: req.ItemCode,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AddItemResponse{Added: out.Added, Inventory: convertState(out.Inventory)}, nil
}

// PickUpItem adds an item collected from the world and removes its source
func (h *Handler) PickUpItem(ctx context.Context, req *PickUpItemRequest) (*PickUpItemResponse, error) {
	out, err := h.inventoryService.PickUpItem(ctx, &inventory.PickUpItemInput{
		ItemCode:   req.ItemCode,
		Quantity:   req.Quantity,
		SourceID:   req.SourceID,
		SourceType: req.SourceType,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &PickUpItemResponse{Added: out.Added, Inventory: convertState(out.Inventory)}, nil
}

// AddItemAtIndex adds to a specific slot
func (h *Handler) AddItemAtIndex(ctx context.Context, req *AddItemAtIndexRequest) (*InventoryResponse, error) {
	out, err := h.inventoryService.AddItemAtIndex(ctx, &inventory.AddItemAtIndexInput{
		ItemCode: req.ItemCode,
		Index:    req.Index,
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &InventoryResponse{Inventory: convertState(out.Inventory)}, nil
}

// RemoveOne takes one item from a slot
func (h *Handler) RemoveOne(ctx context.Context, req *RemoveOneRequest) (*InventoryResponse, error) {
	out, err := h.inventoryService.RemoveOne(ctx, &inventory.RemoveOneInput{Index: req.Index})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &InventoryResponse{Inventory: convertState(out.Inventory)}, nil
}

// RemoveSelected takes one item from the selected slot
func (h *Handler) RemoveSelected(ctx context.Context, _ *RemoveSelectedRequest) (*InventoryResponse, error) {
	out, err := h.inventoryService.RemoveSelectedByOne(ctx, &inventory.RemoveSelectedByOneInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &InventoryResponse{Inventory: convertState(out.Inventory)}, nil
}

// RemoveAll empties a slot
func (h *Handler) RemoveAll(ctx context.Context, req *RemoveAllRequest) (*InventoryResponse, error) {
	out, err := h.inventoryService.RemoveAll(ctx, &inventory.RemoveAllInput{Index: req.Index})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &InventoryResponse{Inventory: convertState(out.Inventory)}, nil
}

// SwapSlots exchanges two slots
func (h *Handler) SwapSlots(ctx context.Context, req *SwapSlotsRequest) (*InventoryResponse, error) {
	out, err := h.inventoryService.SwapSlots(ctx, &inventory.SwapSlotsInput{From: req.From, To: req.To})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &InventoryResponse{Inventory: convertState(out.Inventory)}, nil
}

// SetSelection makes a slot active
func (h *Handler) SetSelection(ctx context.Context, req *SetSelectionRequest) (*SetSelectionResponse, error) {
	out, err := h.inventoryService.SetSelection(ctx, &inventory.SetSelectionInput{
		ItemCode: req.ItemCode,
		Index:    req.Index,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &SetSelectionResponse{Selection: convertSelection(out.Selection)}
	if out.Item != nil {
		resp.Item = convertItem(*out.Item)
	}
	return resp, nil
}

// ClearSelection deselects
func (h *Handler) ClearSelection(ctx context.Context, _ *ClearSelectionRequest) (*ClearSelectionResponse, error) {
	out, err := h.inventoryService.ClearSelection(ctx, &inventory.ClearSelectionInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearSelectionResponse{Selection: convertSelection(out.Selection)}, nil
}

// GetItem looks up a catalog entry
func (h *Handler) GetItem(ctx context.Context, req *GetItemRequest) (*GetItemResponse, error) {
	out, err := h.inventoryService.GetItem(ctx, &inventory.GetItemInput{ItemCode: req.ItemCode})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetItemResponse{Item: convertItem(out.Item)}, nil
}

// ListItems lists catalog entries, optionally by category
func (h *Handler) ListItems(ctx context.Context, req *ListItemsRequest) (*ListItemsResponse, error) {
	out, err := h.inventoryService.ListItems(ctx, &inventory.ListItemsInput{
		Category: entities.ItemCategory(req.Category),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	items := make([]*Item, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, convertItem(item))
	}
	return &ListItemsResponse{Items: items}, nil
}

// SaveGame writes the session to a save slot
func (h *Handler) SaveGame(ctx context.Context, req *SaveGameRequest) (*SaveGameResponse, error) {
	out, err := h.inventoryService.SaveGame(ctx, &inventory.SaveGameInput{GameID: req.GameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SaveGameResponse{GameID: out.GameID, SavedAt: out.SavedAt.Unix()}, nil
}

// LoadGame restores the session from a save slot
func (h *Handler) LoadGame(ctx context.Context, req *LoadGameRequest) (*LoadGameResponse, error) {
	out, err := h.inventoryService.LoadGame(ctx, &inventory.LoadGameInput{GameID: req.GameID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LoadGameResponse{
		GameID:    out.GameID,
		SavedAt:   out.SavedAt.Unix(),
		Inventory: convertState(out.Inventory),
	}, nil
}

// ListSaves lists save slots
func (h *Handler) ListSaves(ctx context.Context, _ *ListSavesRequest) (*ListSavesResponse, error) {
	out, err := h.inventoryService.ListSaves(ctx, &inventory.ListSavesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListSavesResponse{GameIDs: out.GameIDs}, nil
}

// DeleteSave removes a save slot
func (h *Handler) DeleteSave(ctx context.Context, req *DeleteSaveRequest) (*DeleteSaveResponse, error) {
	if req.GameID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_id is required"))
	}

	if _, err := h.inventoryService.DeleteSave(ctx, &inventory.DeleteSaveInput{GameID: req.GameID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteSaveResponse{}, nil
}
