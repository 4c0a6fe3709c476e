package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	addItemCode     int
	addItemQuantity int
)

var addItemCmd = &cobra.Command{
	Use:   "add",
	Short: "Add items, stacking onto an existing slot or the first empty one",
	RunE:  runAddItem,
}

func init() {
	addItemCmd.Flags().IntVar(&addItemCode, "item-code", 0, "Item code (required)")
	addItemCmd.Flags().IntVar(&addItemQuantity, "quantity", 1, "Quantity to add")
	_ = addItemCmd.MarkFlagRequired("item-code") // nolint:errcheck // safe to ignore in init
}

func runAddItem(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.AddItem(ctx, &v1alpha1.AddItemRequest{
			ItemCode: addItemCode,
			Quantity: addItemQuantity,
		})
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}

		if !resp.Added {
			fmt.Fprintf(out, "⚠️  Inventory full, item %d was not added\n\n", addItemCode)
		}
		printInventory(resp.Inventory)
		return nil
	})
}
