package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go.uber.org/fx"

	"github.com/hayZedTech/vibestream-backend/internal/adapter/cache"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/media"
	"github.com/hayZedTech/vibestream-backend/internal/adapter/storage"
	"github.com/hayZedTech/vibestream-backend/internal/domain/registry"
	"github.com/hayZedTech/vibestream-backend/internal/service"
)

// Handler owns the plain request/response CRUD surface: thin route bodies
// that validate, hit one or two repositories and return JSON.
type Handler struct {
	log           *slog.Logger
	auth          service.Auther
	relations     service.Relationshiper
	enricher      service.Enricher
	users         storage.UserRepository
	posts         storage.PostRepository
	notifications storage.NotificationRepository
	chats         storage.ChatRepository
	counters      *cache.Counters
	blobs         media.BlobStore
	hub           registry.Presencer
}

type HandlerParams struct {
	fx.In

	Log           *slog.Logger
	Auth          service.Auther
	Relations     service.Relationshiper
	Enricher      service.Enricher
	Users         storage.UserRepository
	Posts         storage.PostRepository
	Notifications storage.NotificationRepository
	Chats         storage.ChatRepository
	Counters      *cache.Counters
	Blobs         media.BlobStore
	Hub           registry.Presencer
}

func NewHandler(p HandlerParams) *Handler {
	return &Handler{
		log:           p.Log,
		auth:          p.Auth,
		relations:     p.Relations,
		enricher:      p.Enricher,
		users:         p.Users,
		posts:         p.Posts,
		notifications: p.Notifications,
		chats:         p.Chats,
		counters:      p.Counters,
		blobs:         p.Blobs,
		hub:           p.Hub,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]any{
		"status": "ok",
		"hub":    h.hub.Stats(),
	})
}

// --- helpers ---

func respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respond(w, code, map[string]string{"error": msg})
}

// fail maps domain errors to status codes; anything unrecognized is a 500
// with the detail kept out of the response body.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUserExists):
		respondError(w, http.StatusConflict, "username or email already taken")
	case errors.Is(err, service.ErrSelfFollow):
		respondError(w, http.StatusBadRequest, "cannot follow self")
	default:
		h.log.Error("REQUEST_FAILED", "err", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// pagination parses page/page_size query parameters into offset/limit.
func pagination(r *http.Request) (offset, limit int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return (page - 1) * size, size
}
