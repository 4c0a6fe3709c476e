package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var (
	saveGameID   string
	loadGameID   string
	deleteGameID string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the session to a save slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.SaveGame(ctx, &v1alpha1.SaveGameRequest{GameID: saveGameID})
			if err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}
			fmt.Fprintf(out, "💾 Saved %s at %s\n", resp.GameID, time.Unix(resp.SavedAt, 0).Format(time.RFC3339))
			return nil
		})
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Restore the session from a save slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.LoadGame(ctx, &v1alpha1.LoadGameRequest{GameID: loadGameID})
			if err != nil {
				return fmt.Errorf("failed to load game: %w", err)
			}
			fmt.Fprintf(out, "📂 Loaded %s saved at %s\n\n", resp.GameID, time.Unix(resp.SavedAt, 0).Format(time.RFC3339))
			printInventory(resp.Inventory)
			return nil
		})
	},
}

var listSavesCmd = &cobra.Command{
	Use:   "list-saves",
	Short: "List save slots",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ListSaves(ctx, &v1alpha1.ListSavesRequest{})
			if err != nil {
				return fmt.Errorf("failed to list saves: %w", err)
			}
			if len(resp.GameIDs) == 0 {
				fmt.Fprintln(out, "No saves")
				return nil
			}
			for _, id := range resp.GameIDs {
				fmt.Fprintf(out, "  - %s\n", id)
			}
			return nil
		})
	},
}

var deleteSaveCmd = &cobra.Command{
	Use:   "delete-save",
	Short: "Delete a save slot",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			if _, err := client.DeleteSave(ctx, &v1alpha1.DeleteSaveRequest{GameID: deleteGameID}); err != nil {
				return fmt.Errorf("failed to delete save: %w", err)
			}
			fmt.Fprintf(out, "🗑️  Deleted %s\n", deleteGameID)
			return nil
		})
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveGameID, "game-id", "", "Save slot, server default when empty")
	loadCmd.Flags().StringVar(&loadGameID, "game-id", "", "Save slot, server default when empty")
	deleteSaveCmd.Flags().StringVar(&deleteGameID, "game-id", "", "Save slot (required)")
	_ = deleteSaveCmd.MarkFlagRequired("game-id") // nolint:errcheck // safe to ignore in init
}
