package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var getInventoryCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the inventory",
	RunE:  runGetInventory,
}

func runGetInventory(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.GetInventory(ctx, &v1alpha1.GetInventoryRequest{})
		if err != nil {
			return fmt.Errorf("failed to get inventory: %w", err)
		}

		printInventory(resp.Inventory)
		return nil
	})
}
