package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	selectCode  int
	selectIndex int
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.SetSelection(ctx, &v1alpha1.SetSelectionRequest{
				ItemCode: selectCode,
				Index:    selectIndex,
			})
			if err != nil {
				return fmt.Errorf("failed to select slot: %w", err)
			}

			printSelection(resp.Selection)
			if resp.Item != nil {
				printItem(resp.Item)
			}
			return nil
		})
	},
}

var clearSelectionCmd = &cobra.Command{
	Use:   "clear-selection",
	Short: "Clear the selected slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ClearSelection(ctx, &v1alpha1.ClearSelectionRequest{})
			if err != nil {
				return fmt.Errorf("failed to clear selection: %w", err)
			}
			printSelection(resp.Selection)
			return nil
		})
	},
}

func init() {
	selectCmd.Flags().IntVar(&selectCode, "item-code", 0, "Item code in the slot (required)")
	selectCmd.Flags().IntVar(&selectIndex, "index", 0, "Slot index (required)")
	_ = selectCmd.MarkFlagRequired("item-code") // nolint:errcheck // safe to ignore in init
	_ = selectCmd.MarkFlagRequired("index")     // nolint:errcheck // safe to ignore in init
}
