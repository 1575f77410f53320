package service

import (
	"github.com/hayZedTech/vibestream-backend/config"
	"github.com/hayZedTech/vibestream-backend/internal/domain/registry"
)

// Deliverer is the connection lifecycle manager consumed by transport
// handlers. A connection starts anonymous, may identify via a join event,
// and is removed from the directory unconditionally on disconnect.
type Deliverer interface {
	Subscribe() registry.Connector
	Unsubscribe(conn registry.Connector)
}

// Interface guard
var _ Deliverer = (*DeliveryService)(nil)

type DeliveryService struct {
	hub        registry.Presencer
	sendBuffer int
}

func NewDeliveryService(cfg *config.Config, hub registry.Presencer) *DeliveryService {
	buf := cfg.Hub.SendBuffer
	if buf <= 0 {
		buf = 256
	}
	return &DeliveryService{hub: hub, sendBuffer: buf}
}

// Subscribe creates a connector and attaches it, still anonymous, to the hub
// so broadcasts reach it immediately.
func (s *DeliveryService) Subscribe() registry.Connector {
	conn := registry.NewConnector(s.sendBuffer)
	s.hub.Attach(conn)
	return conn
}

// Unsubscribe leaves the directory and closes the handle. Leave verifies
// handle equality internally, so a connection superseded by a newer join
// never evicts its replacement.
func (s *DeliveryService) Unsubscribe(conn registry.Connector) {
	s.hub.Leave(conn)
	conn.Close()
}
