package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
)

// drain empties the connector's outbound buffer and returns what was queued.
func drain(conn Connector) []event.Envelope {
	var out []event.Envelope
	for {
		select {
		case ev := <-conn.Recv():
			out = append(out, ev)
		default:
			return out
		}
	}
}

// lastOnline returns the identity set carried by the most recent onlineUsers
// frame queued on the connector.
func lastOnline(t *testing.T, conn Connector) []string {
	t.Helper()
	frames := drain(conn)
	require.NotEmpty(t, frames)
	last := frames[len(frames)-1]
	require.Equal(t, event.OutOnlineUsers, last.Event)
	online, ok := last.Payload.([]string)
	require.True(t, ok)
	return online
}

func TestJoinLastWriterWins(t *testing.T) {
	h := NewHub()
	c1 := NewConnector(8)
	c2 := NewConnector(8)

	h.Join("alice", c1)
	h.Join("alice", c2)

	got, ok := h.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, c2.ID(), got.ID())
}

func TestJoinEmptyIdentityIsNoOp(t *testing.T) {
	h := NewHub()
	c := NewConnector(8)

	h.Join("", c)

	assert.Empty(t, h.Online())
	assert.Empty(t, drain(c))
}

func TestLeaveRemovesEntry(t *testing.T) {
	h := NewHub()
	c := NewConnector(8)

	h.Join("alice", c)
	h.Leave(c)

	_, ok := h.Lookup("alice")
	assert.False(t, ok)
}

// A late disconnect of a superseded connection must not evict the newer
// entry for the same identity.
func TestStaleDisconnectKeepsNewerEntry(t *testing.T) {
	h := NewHub()
	c1 := NewConnector(8)
	c2 := NewConnector(8)

	h.Join("alice", c1)
	h.Join("alice", c2) // replaces c1 without closing it
	h.Leave(c1)         // old connection's disconnect processed late

	got, ok := h.Lookup("alice")
	require.True(t, ok)
	assert.Equal(t, c2.ID(), got.ID())
}

func TestLeaveUnknownConnectionIsNoOp(t *testing.T) {
	h := NewHub()
	c1 := NewConnector(8)
	c2 := NewConnector(8)

	h.Join("alice", c1)
	h.Leave(c2)

	_, ok := h.Lookup("alice")
	assert.True(t, ok)
}

func TestOnlineSetBroadcastScenario(t *testing.T) {
	h := NewHub()
	c1 := NewConnector(8)
	c2 := NewConnector(8)
	h.Attach(c1)
	h.Attach(c2)

	h.Join("alice", c1)
	assert.ElementsMatch(t, []string{"alice"}, lastOnline(t, c1))

	h.Join("bob", c2)
	assert.ElementsMatch(t, []string{"alice", "bob"}, lastOnline(t, c1))
	assert.ElementsMatch(t, []string{"alice", "bob"}, lastOnline(t, c2))

	h.Leave(c1)
	assert.ElementsMatch(t, []string{"bob"}, lastOnline(t, c2))
}

func TestBroadcastExclusion(t *testing.T) {
	h := NewHub()
	c1 := NewConnector(8)
	c2 := NewConnector(8)
	c3 := NewConnector(8)
	h.Attach(c1)
	h.Attach(c2)
	h.Attach(c3)

	h.Broadcast(event.Envelope{Event: event.OutNewLike}, c1.ID())

	assert.Empty(t, drain(c1))
	assert.Len(t, drain(c2), 1)
	assert.Len(t, drain(c3), 1)
}

// Anonymous connections receive broadcasts even before they identify.
func TestBroadcastReachesAnonymousConnections(t *testing.T) {
	h := NewHub()
	identified := NewConnector(8)
	anonymous := NewConnector(8)
	h.Attach(identified)
	h.Attach(anonymous)

	h.Join("alice", identified)

	assert.ElementsMatch(t, []string{"alice"}, lastOnline(t, anonymous))
}

func TestSendAfterCloseReportsFalse(t *testing.T) {
	c := NewConnector(1)
	c.Close()
	c.Close() // idempotent

	assert.False(t, c.Send(event.Envelope{Event: event.OutNotification}))
}

func TestSendFullBufferDropsWithoutBlocking(t *testing.T) {
	c := NewConnector(1)

	assert.True(t, c.Send(event.Envelope{Event: event.OutNotification}))
	assert.False(t, c.Send(event.Envelope{Event: event.OutNotification}))
}

func TestStats(t *testing.T) {
	h := NewHub()
	c1 := NewConnector(8)
	c2 := NewConnector(8)
	h.Attach(c1)
	h.Attach(c2)
	h.Join("alice", c1)

	stats := h.Stats()
	assert.Equal(t, 1, stats.OnlineUsers)
	assert.Equal(t, 2, stats.TotalConnections)
}
