package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/handlers/ws"
)

func TestWatchPrintsFrames(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = conn.WriteJSON(ws.Frame{Type: ws.FrameState, SaveID: "player_inventory", Slots: []entities.Slot{{ItemCode: 3, Quantity: 1}}})
		_ = conn.WriteJSON(ws.Frame{Type: ws.FrameChanged, SaveID: "player_inventory", Slots: []entities.Slot{{}}})
		_, _, _ = conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)

	prevURL, prevLimit := feedURL, frameLimit
	t.Cleanup(func() { feedURL, frameLimit = prevURL, prevLimit })
	feedURL = "ws" + strings.TrimPrefix(srv.URL, "http")
	frameLimit = 2

	var out bytes.Buffer
	require.NoError(t, watch(context.Background(), &out))

	dec := json.NewDecoder(&out)
	var first, second ws.Frame
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, ws.FrameState, first.Type)
	assert.Equal(t, 3, first.Slots[0].ItemCode)
	assert.Equal(t, ws.FrameChanged, second.Type)
}

func TestWatchDialFailure(t *testing.T) {
	prevURL := feedURL
	t.Cleanup(func() { feedURL = prevURL })
	feedURL = "ws://127.0.0.1:1/ws"

	err := watch(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}
