package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	followee := chi.URLParam(r, "username")

	if err := h.relations.Follow(r.Context(), identity, followee); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	followee := chi.URLParam(r, "username")

	if err := h.relations.Unfollow(r.Context(), identity, followee); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	offset, limit := pagination(r)

	list, err := h.relations.Followers(r.Context(), username, offset, limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"followers": list})
}

func (h *Handler) Following(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	offset, limit := pagination(r)

	list, err := h.relations.Following(r.Context(), username, offset, limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"following": list})
}
