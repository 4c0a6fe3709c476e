// Package main provides a command-line watcher for the inventory change feed
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/ws"
)

var (
	feedURL    string
	timeout    time.Duration
	frameLimit int
)

var rootCmd = &cobra.Command{
	Use:   "rpg-inventory-watch",
	Short: "Print inventory change frames as they arrive",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return watch(ctx, os.Stdout)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&feedURL, "url", "ws://localhost:8080/ws", "change feed URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "dial timeout")
	rootCmd.PersistentFlags().IntVar(&frameLimit, "count", 0, "exit after this many frames, 0 watches until interrupted")
}

func watch(ctx context.Context, w io.Writer) error {
	ctx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, resp, err := websocket.DefaultDialer.DialContext(dialCtx, feedURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	// unblock ReadJSON on interrupt
	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	for received := 0; frameLimit == 0 || received < frameLimit; received++ {
		var frame ws.Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("failed to read frame: %w", err)
		}

		output, err := json.MarshalIndent(frame, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal frame: %w", err)
		}
		fmt.Fprintln(w, string(output))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
