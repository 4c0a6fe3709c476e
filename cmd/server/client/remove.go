package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	removeOneIndex int
	removeAllIndex int
)

var removeOneCmd = &cobra.Command{
	Use:   "remove-one",
	Short: "Remove one item from a slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.RemoveOne(ctx, &v1alpha1.RemoveOneRequest{Index: removeOneIndex})
			if err != nil {
				return fmt.Errorf("failed to remove item: %w", err)
			}
			printInventory(resp.Inventory)
			return nil
		})
	},
}

var removeSelectedCmd = &cobra.Command{
	Use:   "remove-selected",
	Short: "Remove one item from the selected slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.RemoveSelected(ctx, &v1alpha1.RemoveSelectedRequest{})
			if err != nil {
				return fmt.Errorf("failed to remove selected item: %w", err)
			}
			printInventory(resp.Inventory)
			return nil
		})
	},
}

var removeAllCmd = &cobra.Command{
	Use:   "remove-all",
	Short: "Empty a slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.RemoveAll(ctx, &v1alpha1.RemoveAllRequest{Index: removeAllIndex})
			if err != nil {
				return fmt.Errorf("failed to empty slot: %w", err)
			}
			printInventory(resp.Inventory)
			return nil
		})
	},
}

func init() {
	removeOneCmd.Flags().IntVar(&removeOneIndex, "index", 0, "Slot index")
	removeAllCmd.Flags().IntVar(&removeAllIndex, "index", 0, "Slot index")
}
