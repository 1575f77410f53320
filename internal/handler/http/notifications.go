package http

import (
	"net/http"
	"time"

	"github.com/hayZedTech/vibestream-backend/internal/service"
)

type notificationResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"type"`
	Sender    service.Profile `json:"sender"`
	PostID    string          `json:"postId,omitempty"`
	Message   string          `json:"message,omitempty"`
	Read      bool            `json:"read"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListNotifications returns the caller's notifications with sender profiles
// attached via the cached enricher.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	offset, limit := pagination(r)

	items, err := h.notifications.ListByRecipient(r.Context(), identity, offset, limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	unread, err := h.notifications.CountUnread(r.Context(), identity)
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		sender, _ := h.enricher.Resolve(r.Context(), n.Sender)
		out = append(out, notificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Sender:    sender,
			PostID:    n.PostID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	respond(w, http.StatusOK, map[string]any{"notifications": out, "unread": unread})
}

func (h *Handler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())

	if err := h.notifications.MarkAllRead(r.Context(), identity); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}
