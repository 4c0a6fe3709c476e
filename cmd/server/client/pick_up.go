package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	pickUpCode       int
	pickUpQuantity   int
	pickUpSourceID   string
	pickUpSourceType string
)

var pickUpCmd = &cobra.Command{
	Use:   "pick-up",
	Short: "Pick up a world object into the inventory",
	Long: `Pick up a world object. The source object is always removed from the world,
even when the inventory is full and the item is lost.`,
	RunE: runPickUp,
}

func init() {
	pickUpCmd.Flags().IntVar(&pickUpCode, "item-code", 0, "Item code (required)")
	pickUpCmd.Flags().IntVar(&pickUpQuantity, "quantity", 1, "Quantity to pick up")
	pickUpCmd.Flags().StringVar(&pickUpSourceID, "source-id", "", "World object ID (required)")
	pickUpCmd.Flags().StringVar(&pickUpSourceType, "source-type", "", "World object type")
	_ = pickUpCmd.MarkFlagRequired("item-code") // nolint:errcheck // safe to ignore in init
	_ = pickUpCmd.MarkFlagRequired("source-id") // nolint:errcheck // safe to ignore in init
}

func runPickUp(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.PickUpItem(ctx, &v1alpha1.PickUpItemRequest{
			ItemCode:   pickUpCode,
			Quantity:   pickUpQuantity,
			SourceID:   pickUpSourceID,
			SourceType: pickUpSourceType,
		})
		if err != nil {
			return fmt.Errorf("failed to pick up item: %w", err)
		}

		if !resp.Added {
			fmt.Fprintf(out, "⚠️  Inventory full, %s was removed and item %d lost\n\n", pickUpSourceID, pickUpCode)
		}
		printInventory(resp.Inventory)
		return nil
	})
}
