package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Conversation returns the message history between the caller and the peer,
// oldest first.
func (h *Handler) Conversation(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	peer := chi.URLParam(r, "username")
	offset, limit := pagination(r)

	messages, err := h.chats.Conversation(r.Context(), identity, peer, offset, limit)
	if err != nil {
		h.fail(w, err)
		return
	}

	profile, _ := h.enricher.Resolve(r.Context(), peer)
	respond(w, http.StatusOK, map[string]any{
		"peer":     profile,
		"messages": messages,
	})
}

// MarkChatRead flags everything the peer sent to the caller as read.
func (h *Handler) MarkChatRead(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	peer := chi.URLParam(r, "username")

	if err := h.chats.MarkRead(r.Context(), peer, identity); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}
