// Package main is the entry point for the inventory server and its tooling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-inventory",
	Short: "Slot-based game inventory server",
	Long: `rpg-inventory runs a player inventory over gRPC, streams changes to websocket
watchers and persists the session through game saves.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
