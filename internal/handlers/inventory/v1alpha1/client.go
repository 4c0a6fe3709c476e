package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls the inventory service over conn using the JSON codec
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a client on an existing connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetInventory(ctx context.Context, in *GetInventoryRequest, opts ...grpc.CallOption) (*GetInventoryResponse, error) {
	return invoke[GetInventoryResponse](ctx, c, "GetInventory", in, opts...)
}

func (c *Client) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	return invoke[AddItemResponse](ctx, c, "AddItem", in, opts...)
}

func (c *Client) PickUpItem(ctx context.Context, in *PickUpItemRequest, opts ...grpc.CallOption) (*PickUpItemResponse, error) {
	return invoke[PickUpItemResponse](ctx, c, "PickUpItem", in, opts...)
}

func (c *Client) AddItemAtIndex(ctx context.Context, in *AddItemAtIndexRequest, opts ...grpc.CallOption) (*InventoryResponse, error) {
	return invoke[InventoryResponse](ctx, c, "AddItemAtIndex", in, opts...)
}

func (c *Client) RemoveOne(ctx context.Context, in *RemoveOneRequest, opts ...grpc.CallOption) (*InventoryResponse, error) {
	return invoke[InventoryResponse](ctx, c, "RemoveOne", in, opts...)
}

func (c *Client) RemoveSelected(ctx context.Context, in *RemoveSelectedRequest, opts ...grpc.CallOption) (*InventoryResponse, error) {
	return invoke[InventoryResponse](ctx, c, "RemoveSelected", in, opts...)
}

func (c *Client) RemoveAll(ctx context.Context, in *RemoveAllRequest, opts ...grpc.CallOption) (*InventoryResponse, error) {
	return invoke[InventoryResponse](ctx, c, "RemoveAll", in, opts...)
}

func (c *Client) SwapSlots(ctx context.Context, in *SwapSlotsRequest, opts ...grpc.CallOption) (*InventoryResponse, error) {
	return invoke[InventoryResponse](ctx, c, "SwapSlots", in, opts...)
}

func (c *Client) SetSelection(ctx context.Context, in *SetSelectionRequest, opts ...grpc.CallOption) (*SetSelectionResponse, error) {
	return invoke[SetSelectionResponse](ctx, c, "SetSelection", in, opts...)
}

func (c *Client) ClearSelection(ctx context.Context, in *ClearSelectionRequest, opts ...grpc.CallOption) (*ClearSelectionResponse, error) {
	return invoke[ClearSelectionResponse](ctx, c, "ClearSelection", in, opts...)
}

func (c *Client) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	return invoke[GetItemResponse](ctx, c, "GetItem", in, opts...)
}

func (c *Client) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c, "ListItems", in, opts...)
}

func (c *Client) SaveGame(ctx context.Context, in *SaveGameRequest, opts ...grpc.CallOption) (*SaveGameResponse, error) {
	return invoke[SaveGameResponse](ctx, c, "SaveGame", in, opts...)
}

func (c *Client) LoadGame(ctx context.Context, in *LoadGameRequest, opts ...grpc.CallOption) (*LoadGameResponse, error) {
	return invoke[LoadGameResponse](ctx, c, "LoadGame", in, opts...)
}

func (c *Client) ListSaves(ctx context.Context, in *ListSavesRequest, opts ...grpc.CallOption) (*ListSavesResponse, error) {
	return invoke[ListSavesResponse](ctx, c, "ListSaves", in, opts...)
}

func (c *Client) DeleteSave(ctx context.Context, in *DeleteSaveRequest, opts ...grpc.CallOption) (*DeleteSaveResponse, error) {
	return invoke[DeleteSaveResponse](ctx, c, "DeleteSave", in, opts...)
}
