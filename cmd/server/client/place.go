package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	placeCode     int
	placeIndex    int
	placeQuantity int
)

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Add items to a specific slot, relabeling it with the item code",
	RunE:  runPlace,
}

func init() {
	placeCmd.Flags().IntVar(&placeCode, "item-code", 0, "Item code (required)")
	placeCmd.Flags().IntVar(&placeIndex, "index", 0, "Slot index")
	placeCmd.Flags().IntVar(&placeQuantity, "quantity", 1, "Quantity to add")
	_ = placeCmd.MarkFlagRequired("item-code") // nolint:errcheck // safe to ignore in init
}

func runPlace(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.AddItemAtIndex(ctx, &v1alpha1.AddItemAtIndexRequest{
			ItemCode: placeCode,
			Index:    placeIndex,
			Quantity: placeQuantity,
		})
		if err != nil {
			return fmt.Errorf("failed to place item: %w", err)
		}

		printInventory(resp.Inventory)
		return nil
	})
}
