//go:build integration

package client

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

// TestSaveLoadRoundTripIntegration runs against a live server started with
// the embedded catalog.
func TestSaveLoadRoundTripIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	}()

	client := v1alpha1.NewClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := client.ListItems(ctx, &v1alpha1.ListItemsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, items.Items)
	code := items.Items[0].Code

	before, err := client.GetInventory(ctx, &v1alpha1.GetInventoryRequest{})
	require.NoError(t, err)

	added, err := client.AddItem(ctx, &v1alpha1.AddItemRequest{ItemCode: code, Quantity: 2})
	require.NoError(t, err)

	gameID := fmt.Sprintf("integration_%d", time.Now().UnixNano())
	saved, err := client.SaveGame(ctx, &v1alpha1.SaveGameRequest{GameID: gameID})
	require.NoError(t, err)
	assert.Equal(t, gameID, saved.GameID)
	defer func() {
		_, _ = client.DeleteSave(context.Background(), &v1alpha1.DeleteSaveRequest{GameID: gameID})
	}()

	// Mutate after saving so the load has something to undo
	_, err = client.AddItem(ctx, &v1alpha1.AddItemRequest{ItemCode: code, Quantity: 1})
	require.NoError(t, err)

	loaded, err := client.LoadGame(ctx, &v1alpha1.LoadGameRequest{GameID: gameID})
	require.NoError(t, err)
	assert.Equal(t, added.Inventory.Slots, loaded.Inventory.Slots)
	assert.Len(t, loaded.Inventory.Slots, before.Inventory.Capacity)

	saves, err := client.ListSaves(ctx, &v1alpha1.ListSavesRequest{})
	require.NoError(t, err)
	assert.Contains(t, saves.GameIDs, gameID)

	_, err = client.GetItem(ctx, &v1alpha1.GetItemRequest{ItemCode: 999999})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}
