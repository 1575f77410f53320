package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/hayZedTech/vibestream-backend/internal/domain/event"
	"github.com/hayZedTech/vibestream-backend/internal/domain/registry"
	"github.com/hayZedTech/vibestream-backend/internal/service"
)

// WSHandler upgrades HTTP requests to the persistent event channel and pumps
// frames between the socket and the connection handle.
type WSHandler struct {
	logger    *slog.Logger
	deliverer service.Deliverer
	engine    *service.Engine
	upgrader  websocket.Upgrader
}

func NewWSHandler(logger *slog.Logger, deliverer service.Deliverer, engine *service.Engine) *WSHandler {
	return &WSHandler{
		logger:    logger,
		deliverer: deliverer,
		engine:    engine,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // Security: adjust for production
		},
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sock, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WS_UPGRADE_FAILED", "err", err)
		return
	}
	defer sock.Close()

	// The connection starts anonymous; a join event identifies it.
	conn := h.deliverer.Subscribe()
	defer h.deliverer.Unsubscribe(conn)

	h.logger.Info("WS_OPENED", "conn_id", conn.ID(), "remote", r.RemoteAddr)

	go h.writePump(sock, conn)
	h.readPump(r, sock, conn)

	h.logger.Info("WS_CLOSED", "conn_id", conn.ID(), "identity", conn.Identity())
}

// writePump drains the connector's outbound channel onto the socket. It exits
// when the handle is closed or a write fails.
func (h *WSHandler) writePump(sock *websocket.Conn, conn registry.Connector) {
	for {
		select {
		case <-conn.Done():
			return
		case ev := <-conn.Recv():
			data, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("WS_MARSHAL_FAILED", "event", ev.Event, "err", err)
				continue
			}
			if err := sock.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Warn("WS_SEND_FAILED", "conn_id", conn.ID(), "err", err)
				conn.Close()
				return
			}
		}
	}
}

// readPump decodes inbound frames and dispatches them to the engine until the
// peer goes away. Any read error counts as a disconnect; Unsubscribe in the
// caller then removes the directory entry unconditionally.
func (h *WSHandler) readPump(r *http.Request, sock *websocket.Conn, conn registry.Connector) {
	ctx := r.Context()
	for {
		_, data, err := sock.ReadMessage()
		if err != nil {
			return
		}

		var frame event.Inbound
		if err := json.Unmarshal(data, &frame); err != nil {
			// Malformed frames are dropped without feedback, like any
			// other validation failure.
			h.logger.Debug("WS_FRAME_DROPPED", "conn_id", conn.ID(), "err", err)
			continue
		}

		switch frame.Event {
		case event.InJoin:
			var ev event.Join
			if decode(frame.Payload, &ev) {
				h.engine.Join(&ev, conn)
			}
		case event.InNewPost:
			// The whole payload is relayed opaquely; no inner shape to decode.
			h.engine.NewPost(ctx, conn.ID(), &event.NewPost{Payload: frame.Payload})
		case event.InNewLike:
			var ev event.Like
			if decode(frame.Payload, &ev) {
				h.engine.Like(ctx, conn.ID(), &ev)
			}
		case event.InNewComment:
			var ev event.Comment
			if decode(frame.Payload, &ev) {
				h.engine.Comment(ctx, conn.ID(), &ev)
			}
		case event.InFollow:
			var ev event.Follow
			if decode(frame.Payload, &ev) {
				h.engine.Follow(ctx, conn.ID(), &ev)
			}
		case event.InChatMessage:
			var ev event.Chat
			if decode(frame.Payload, &ev) {
				h.engine.Chat(ctx, conn, &ev)
			}
		default:
			h.logger.Debug("WS_UNKNOWN_EVENT", "event", frame.Event, "conn_id", conn.ID())
		}
	}
}

func decode(raw json.RawMessage, dst any) bool {
	return json.Unmarshal(raw, dst) == nil
}
