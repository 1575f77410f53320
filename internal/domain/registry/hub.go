package registry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
)

// Presencer is the gateway to the presence directory for services and
// transport handlers.
type Presencer interface {
	Attach(conn Connector)
	Join(identity string, conn Connector)
	Leave(conn Connector)
	Lookup(identity string) (Connector, bool)
	Online() []string
	Broadcast(ev event.Envelope, exclude ...uuid.UUID)
	Stats() Stats
}

// Interface guard
var _ Presencer = (*Hub)(nil)

// Hub implements the presence directory. Two maps live behind one mutex:
// conns holds every live connection (anonymous included), users holds the
// single active connection per identity.
type Hub struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]Connector
	users map[string]Connector

	log       *slog.Logger
	startedAt time.Time
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		conns:     make(map[uuid.UUID]Connector),
		users:     make(map[string]Connector),
		log:       slog.Default(),
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Attach registers a freshly opened connection before it has identified.
func (h *Hub) Attach(conn Connector) {
	h.mu.Lock()
	h.conns[conn.ID()] = conn
	h.mu.Unlock()
}

// Join binds an identity to its connection. A later join for the same
// identity silently replaces the earlier handle; the prior connection is NOT
// closed. An empty identity is a silent no-op, matching the permissive-input
// contract of a best-effort presence feature.
func (h *Hub) Join(identity string, conn Connector) {
	if identity == "" || conn == nil {
		return
	}

	h.mu.Lock()
	h.conns[conn.ID()] = conn // join may arrive before Attach in tests
	h.users[identity] = conn  // [LAST_WRITER_WINS]
	h.mu.Unlock()

	conn.Identify(identity)
	h.log.Debug("PRESENCE_JOINED", "identity", identity, "conn_id", conn.ID())
	h.broadcastOnline()
}

// Leave removes the connection from the directory. The identity entry is
// removed only when the stored handle still IS this connection: a late
// disconnect of a superseded handle must not evict the newer entry.
func (h *Hub) Leave(conn Connector) {
	if conn == nil {
		return
	}

	h.mu.Lock()
	delete(h.conns, conn.ID())
	for identity, cur := range h.users {
		if cur.ID() == conn.ID() {
			delete(h.users, identity)
			break
		}
	}
	h.mu.Unlock()

	h.log.Debug("PRESENCE_LEFT", "conn_id", conn.ID())
	h.broadcastOnline()
}

// Lookup is the point-in-time presence check used to decide whether a
// targeted delivery should be attempted.
func (h *Hub) Lookup(identity string) (Connector, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	conn, ok := h.users[identity]
	return conn, ok
}

// Online returns a snapshot of the currently registered identities.
// Order is irrelevant.
func (h *Hub) Online() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.users))
	for identity := range h.users {
		out = append(out, identity)
	}
	return out
}

// Broadcast delivers an event to every live connection except the explicit
// exclusion set. The recipient list is a snapshot taken under the lock; the
// sends themselves happen outside it and never block.
func (h *Hub) Broadcast(ev event.Envelope, exclude ...uuid.UUID) {
	h.mu.RLock()
	targets := make([]Connector, 0, len(h.conns))
	for id, conn := range h.conns {
		if containsID(exclude, id) {
			continue
		}
		targets = append(targets, conn)
	}
	h.mu.RUnlock()

	for _, conn := range targets {
		conn.Send(ev)
	}
}

func (h *Hub) broadcastOnline() {
	h.Broadcast(event.Envelope{Event: event.OutOnlineUsers, Payload: h.Online()})
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
