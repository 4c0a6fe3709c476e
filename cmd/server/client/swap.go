package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	swapFrom int
	swapTo   int
)

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Exchange the contents of two slots",
	RunE:  runSwap,
}

func init() {
	swapCmd.Flags().IntVar(&swapFrom, "from", 0, "First slot index")
	swapCmd.Flags().IntVar(&swapTo, "to", 0, "Second slot index")
	_ = swapCmd.MarkFlagRequired("from") // nolint:errcheck // safe to ignore in init
	_ = swapCmd.MarkFlagRequired("to")   // nolint:errcheck // safe to ignore in init
}

func runSwap(_ *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
		resp, err := client.SwapSlots(ctx, &v1alpha1.SwapSlotsRequest{From: swapFrom, To: swapTo})
		if err != nil {
			return fmt.Errorf("failed to swap slots: %w", err)
		}

		printInventory(resp.Inventory)
		return nil
	})
}
