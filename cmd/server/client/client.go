// Package client provides commands that call a running inventory server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running inventory server",
	Long:  `Client commands make real gRPC requests against the inventory service.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Inventory commands
	ClientCmd.AddCommand(getInventoryCmd)
	ClientCmd.AddCommand(addItemCmd)
	ClientCmd.AddCommand(pickUpCmd)
	ClientCmd.AddCommand(placeCmd)
	ClientCmd.AddCommand(removeOneCmd)
	ClientCmd.AddCommand(removeSelectedCmd)
	ClientCmd.AddCommand(removeAllCmd)
	ClientCmd.AddCommand(swapCmd)

	// Selection commands
	ClientCmd.AddCommand(selectCmd)
	ClientCmd.AddCommand(clearSelectionCmd)

	// Catalog commands
	ClientCmd.AddCommand(getItemCmd)
	ClientCmd.AddCommand(listItemsCmd)

	// Save commands
	ClientCmd.AddCommand(saveCmd)
	ClientCmd.AddCommand(loadCmd)
	ClientCmd.AddCommand(listSavesCmd)
	ClientCmd.AddCommand(deleteSaveCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createInventoryClient creates an inventory service client
func createInventoryClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// withClient runs fn with a connected client and a request deadline
func withClient(fn func(ctx context.Context, client *v1alpha1.Client) error) error {
	client, cleanup, err := createInventoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, client)
}
