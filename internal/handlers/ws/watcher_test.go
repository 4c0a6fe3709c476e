package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	inv "github.com/KirkDiggler/rpg-inventory/internal/inventory"
)

func serverConn(t *testing.T) *websocket.Conn {
	t.Helper()

	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)

	client, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if resp != nil {
		_ = resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	select {
	case conn := <-conns:
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("server side of websocket never arrived")
		return nil
	}
}

func TestWatcherDisconnectsWhenBufferFull(t *testing.T) {
	w := newWatcher(serverConn(t), 1)
	event := &inv.ChangedEvent{
		SaveID:   "player_inventory",
		Location: entities.LocationPlayer,
		Slots:    []entities.Slot{{ItemCode: 1, Quantity: 1}},
	}

	w.deliver(event)
	select {
	case <-w.done:
		t.Fatal("watcher closed before its buffer filled")
	default:
	}

	w.deliver(event)
	select {
	case <-w.done:
	default:
		t.Fatal("watcher should close once its buffer overflows")
	}

	// delivery after close is dropped without blocking
	w.deliver(event)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w := newWatcher(serverConn(t), 1)
	w.close()
	w.close()

	require.Error(t, w.write([]byte(`{}`)))
}
