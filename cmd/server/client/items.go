package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	getItemCode       int
	listItemsCategory string
)

var getItemCmd = &cobra.Command{
	Use:   "get-item",
	Short: "Show a catalog item",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.GetItem(ctx, &v1alpha1.GetItemRequest{ItemCode: getItemCode})
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}
			printItem(resp.Item)
			return nil
		})
	},
}

var listItemsCmd = &cobra.Command{
	Use:   "list-items",
	Short: "List catalog items",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ListItems(ctx, &v1alpha1.ListItemsRequest{Category: listItemsCategory})
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			fmt.Fprintf(out, "📦 %d items\n\n", len(resp.Items))
			for _, item := range resp.Items {
				printItem(item)
			}
			return nil
		})
	},
}

func init() {
	getItemCmd.Flags().IntVar(&getItemCode, "item-code", 0, "Item code (required)")
	_ = getItemCmd.MarkFlagRequired("item-code") // nolint:errcheck // safe to ignore in init

	listItemsCmd.Flags().StringVar(&listItemsCategory, "category", "", "Only list items of this category")
}
