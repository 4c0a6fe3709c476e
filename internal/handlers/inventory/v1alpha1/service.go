package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "inventory.v1alpha1.InventoryService"

// InventoryServiceServer is the server API for the inventory service
type InventoryServiceServer interface {
	GetInventory(context.Context, *GetInventoryRequest) (*GetInventoryResponse, error)
	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	PickUpItem(context.Context, *PickUpItemRequest) (*PickUpItemResponse, error)
	AddItemAtIndex(context.Context, *AddItemAtIndexRequest) (*InventoryResponse, error)
	RemoveOne(context.Context, *RemoveOneRequest) (*InventoryResponse, error)
	RemoveSelected(context.Context, *RemoveSelectedRequest) (*InventoryResponse, error)
	RemoveAll(context.Context, *RemoveAllRequest) (*InventoryResponse, error)
	SwapSlots(context.Context, *SwapSlotsRequest) (*InventoryResponse, error)
	SetSelection(context.Context, *SetSelectionRequest) (*SetSelectionResponse, error)
	ClearSelection(context.Context, *ClearSelectionRequest) (*ClearSelectionResponse, error)
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	SaveGame(context.Context, *SaveGameRequest) (*SaveGameResponse, error)
	LoadGame(context.Context, *LoadGameRequest) (*LoadGameResponse, error)
	ListSaves(context.Context, *ListSavesRequest) (*ListSavesResponse, error)
	DeleteSave(context.Context, *DeleteSaveRequest) (*DeleteSaveResponse, error)
}

// InventoryServiceDesc describes the inventory service for grpc.Server
var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetInventory", InventoryServiceServer.GetInventory),
		unary("AddItem", InventoryServiceServer.AddItem),
		unary("PickUpItem", InventoryServiceServer.PickUpItem),
		unary("AddItemAtIndex", InventoryServiceServer.AddItemAtIndex),
		unary("RemoveOne", InventoryServiceServer.RemoveOne),
		unary("RemoveSelected", InventoryServiceServer.RemoveSelected),
		unary("RemoveAll", InventoryServiceServer.RemoveAll),
		unary("SwapSlots", InventoryServiceServer.SwapSlots),
		unary("SetSelection", InventoryServiceServer.SetSelection),
		unary("ClearSelection", InventoryServiceServer.ClearSelection),
		unary("GetItem", InventoryServiceServer.GetItem),
		unary("ListItems", InventoryServiceServer.ListItems),
		unary("SaveGame", InventoryServiceServer.SaveGame),
		unary("LoadGame", InventoryServiceServer.LoadGame),
		unary("ListSaves", InventoryServiceServer.ListSaves),
		unary("DeleteSave", InventoryServiceServer.DeleteSave),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory/v1alpha1/inventory",
}

// RegisterInventoryServiceServer registers srv with s
func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

// FullMethod returns the gRPC method path for method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](
	method string,
	call func(InventoryServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(InventoryServiceServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(InventoryServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
