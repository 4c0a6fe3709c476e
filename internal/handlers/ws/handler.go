// Package ws streams inventory change events to websocket watchers
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	inv "github.com/KirkDiggler/rpg-inventory/internal/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

const (
	writeWait         = 10 * time.Second
	maxMessageSize    = 512
	defaultBufferSize = 16
)

// Frame types
const (
	FrameState   = "state"
	FrameChanged = "changed"
)

// Frame is one message pushed to a watcher. Every frame carries the full
// slot list, so the most recent frame always describes the inventory.
type Frame struct {
	Type      string              `json:"type"`
	SaveID    string              `json:"save_id"`
	Location  string              `json:"location"`
	Slots     []entities.Slot     `json:"slots"`
	Capacity  int                 `json:"capacity,omitempty"`
	Selection *entities.Selection `json:"selection,omitempty"`
}

// HandlerConfig holds dependencies for the websocket handler
type HandlerConfig struct {
	InventoryService inventory.Service
	// BufferSize is the number of frames queued per watcher before it is
	// disconnected as too slow. Defaults to 16.
	BufferSize int
}

// Validate validates the handler configuration
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InventoryService == nil {
		vb.RequiredField("InventoryService")
	}
	if c.BufferSize < 0 {
		vb.Fieldf("BufferSize", "must not be negative, got %d", c.BufferSize)
	}

	return vb.Build()
}

// Handler upgrades requests and streams change frames until the peer leaves
type Handler struct {
	inventoryService inventory.Service
	upgrader         websocket.Upgrader
	bufferSize       int
}

// NewHandler creates a websocket handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bufferSize := cfg.BufferSize
	if bufferSize == 0 {
		bufferSize = defaultBufferSize
	}

	return &Handler{
		inventoryService: cfg.InventoryService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		bufferSize: bufferSize,
	}, nil
}

// ServeHTTP sends the current state, then one frame per change
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	wt := newWatcher(conn, h.bufferSize)
	subID := h.inventoryService.Subscribe(wt.deliver)
	defer func() {
		if err := h.inventoryService.Unsubscribe(subID); err != nil {
			slog.Warn("failed to unsubscribe watcher", "subscription_id", subID, "error", err)
		}
		wt.close()
	}()

	slog.Debug("inventory watcher connected", "remote", r.RemoteAddr, "subscription_id", subID)

	ctx, cancel := context.WithTimeout(r.Context(), writeWait)
	out, err := h.inventoryService.GetInventory(ctx, &inventory.GetInventoryInput{})
	cancel()
	if err != nil {
		slog.Error("failed to read inventory for watcher", "error", err)
		wt.closeWith(websocket.CloseInternalServerErr, "inventory unavailable")
		return
	}

	data, err := json.Marshal(stateFrame(out.Inventory))
	if err != nil {
		slog.Error("failed to marshal inventory state", "error", err)
		return
	}
	if err := wt.write(data); err != nil {
		return
	}

	go wt.writeLoop()
	wt.readLoop()

	slog.Debug("inventory watcher disconnected", "remote", r.RemoteAddr, "subscription_id", subID)
}

func stateFrame(state *inventory.State) *Frame {
	sel := state.Selection
	return &Frame{
		Type:      FrameState,
		SaveID:    state.SaveID,
		Location:  string(state.Location),
		Slots:     state.Slots,
		Capacity:  state.Capacity,
		Selection: &sel,
	}
}

func changedFrame(event *inv.ChangedEvent) *Frame {
	return &Frame{
		Type:     FrameChanged,
		SaveID:   event.SaveID,
		Location: string(event.Location),
		Slots:    event.Slots,
	}
}

type watcher struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	mu        sync.Mutex
	closeOnce sync.Once
}

func newWatcher(conn *websocket.Conn, bufferSize int) *watcher {
	return &watcher{
		conn: conn,
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
}

// deliver runs inside the mutating call and never blocks it
func (w *watcher) deliver(event *inv.ChangedEvent) {
	data, err := json.Marshal(changedFrame(event))
	if err != nil {
		slog.Error("failed to marshal change frame", "error", err)
		return
	}

	select {
	case <-w.done:
	case w.send <- data:
	default:
		slog.Warn("inventory watcher fell behind, disconnecting", "remote", w.conn.RemoteAddr().String())
		w.close()
	}
}

func (w *watcher) write(data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return w.conn.WriteMessage(websocket.TextMessage, data)
}

func (w *watcher) writeLoop() {
	for {
		select {
		case <-w.done:
			return
		case data := <-w.send:
			if err := w.write(data); err != nil {
				w.close()
				return
			}
		}
	}
}

// readLoop discards peer messages and returns once the connection fails
func (w *watcher) readLoop() {
	w.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (w *watcher) closeWith(code int, reason string) {
	w.mu.Lock()
	_ = w.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	w.mu.Unlock()
	w.close()
}

func (w *watcher) close() {
	w.closeOnce.Do(func() {
		close(w.done)
		_ = w.conn.Close()
	})
}
