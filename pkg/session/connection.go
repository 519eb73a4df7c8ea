package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// writeTimeout bounds a single WebSocket send, grounded on the teacher's
// ConnectionManager.writeTimeout.
const writeTimeout = 5 * time.Second

// connection is a single WebSocket client attached to a session's control
// channel, one peer among possibly several (the instrumented child among
// them).
type connection struct {
	id     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
}

// hub tracks every connection attached to one session and broadcasts to
// all of them. Grounded on the teacher's ConnectionManager, collapsed
// from per-channel subscription sets to a single flat set since a
// session has exactly one logical channel.
type hub struct {
	mu    sync.RWMutex
	conns map[string]*connection
}

func newHub() *hub {
	return &hub{conns: make(map[string]*connection)}
}

func (h *hub) register(parentCtx context.Context, ws *websocket.Conn) *connection {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &connection{id: uuid.New().String(), conn: ws, ctx: ctx, cancel: cancel}
	h.mu.Lock()
	h.conns[c.id] = c
	h.mu.Unlock()
	return c
}

func (h *hub) unregister(c *connection) {
	h.mu.Lock()
	delete(h.conns, c.id)
	h.mu.Unlock()
	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// broadcast sends v to every connected peer. Connection pointers are
// snapshotted under RLock and released before sending, so a slow or
// stalled client can't stall register/unregister of others.
func (h *hub) broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("session: failed to marshal broadcast frame", "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*connection, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		h.sendRaw(c, data)
	}
}

func (h *hub) sendJSON(c *connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("session: failed to marshal frame", "connection_id", c.id, "error", err)
		return
	}
	h.sendRaw(c, data)
}

func (h *hub) sendRaw(c *connection, data []byte) {
	writeCtx, cancel := context.WithTimeout(c.ctx, writeTimeout)
	defer cancel()
	if err := c.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Warn("session: failed to send frame", "connection_id", c.id, "error", err)
	}
}

// closeAll closes every connection with a normal-close status, used by
// teardown.
func (h *hub) closeAll() {
	h.mu.Lock()
	conns := make([]*connection, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.conns = make(map[string]*connection)
	h.mu.Unlock()

	for _, c := range conns {
		c.cancel()
		_ = c.conn.Close(websocket.StatusNormalClosure, "session stopped")
	}
}
