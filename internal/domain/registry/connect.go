package registry

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
)

// Interface guard
var _ Connector = (*connect)(nil)

// Connector is the opaque handle to one live bidirectional channel instance.
// External layers (hub, engine, transport) only ever see this interface.
type Connector interface {
	ID() uuid.UUID
	Identity() string
	Identify(identity string)
	// Send is a non-suspending, fire-and-forget enqueue: it never blocks the
	// caller and reports false when the frame was dropped.
	Send(ev event.Envelope) bool
	Recv() <-chan event.Envelope
	Done() <-chan struct{}
	Close()
}

// connect is the concrete implementation, unexported to force interface usage.
type connect struct {
	id     uuid.UUID
	sendCh chan event.Envelope
	doneCh chan struct{}

	mu       sync.RWMutex
	identity string

	closeOnce    sync.Once
	droppedCount uint64 // [ATOMIC_FIELD]
}

// NewConnector returns a fresh handle with the given outbound buffer.
func NewConnector(bufferSize int) Connector {
	return &connect{
		id:     uuid.New(),
		sendCh: make(chan event.Envelope, bufferSize),
		doneCh: make(chan struct{}),
	}
}

func (c *connect) ID() uuid.UUID { return c.id }

func (c *connect) Identity() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity
}

func (c *connect) Identify(identity string) {
	c.mu.Lock()
	c.identity = identity
	c.mu.Unlock()
}

// Send enqueues without waiting. A full buffer means a persistently slow
// consumer; the frame is counted as dropped rather than stalling the sender.
func (c *connect) Send(ev event.Envelope) bool {
	select {
	case <-c.doneCh:
		return false
	default:
	}

	select {
	case c.sendCh <- ev:
		return true
	default:
		atomic.AddUint64(&c.droppedCount, 1)
		return false
	}
}

func (c *connect) Recv() <-chan event.Envelope { return c.sendCh }
func (c *connect) Done() <-chan struct{}       { return c.doneCh }

// Close terminates the handle. It is idempotent and safe to call from the
// transport handler, the hub, or a deferred cleanup concurrently. The send
// channel is deliberately left open so in-flight Sends can never panic; the
// write pump exits via Done instead of channel close.
func (c *connect) Close() {
	c.closeOnce.Do(func() {
		close(c.doneCh)
	})
}
