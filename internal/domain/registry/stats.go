package registry

import "time"

// Stats is a point-in-time view of the directory, exposed on the health
// endpoint.
type Stats struct {
	OnlineUsers      int           `json:"online_users"`
	TotalConnections int           `json:"total_connections"`
	Uptime           time.Duration `json:"uptime"`
}

func (h *Hub) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Stats{
		OnlineUsers:      len(h.users),
		TotalConnections: len(h.conns),
		Uptime:           time.Since(h.startedAt),
	}
}
