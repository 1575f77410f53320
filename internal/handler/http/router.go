package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hayZedTech/vibestream-backend/config"
	"github.com/hayZedTech/vibestream-backend/internal/handler/ws"
	"github.com/hayZedTech/vibestream-backend/internal/service"
)

// NewRouter assembles the full HTTP surface: REST API, the websocket
// endpoint and static media serving.
func NewRouter(cfg *config.Config, log *slog.Logger, h *Handler, wsHandler *ws.WSHandler, auth service.Auther) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(log))

	r.Get("/healthz", h.Health)
	r.Handle("/ws", wsHandler)
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.Media.Dir))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(auth))

			r.Get("/users/{username}", h.GetUser)
			r.Get("/users/{username}/followers", h.Followers)
			r.Get("/users/{username}/following", h.Following)
			r.Put("/users/me", h.UpdateProfile)
			r.Post("/users/me/avatar", h.UploadAvatar)

			r.Post("/posts", h.CreatePost)
			r.Get("/posts", h.ListPosts)
			r.Post("/posts/{postID}/like", h.LikePost)
			r.Delete("/posts/{postID}/like", h.UnlikePost)
			r.Post("/posts/{postID}/comments", h.CreateComment)
			r.Get("/posts/{postID}/comments", h.ListComments)

			r.Post("/follows/{username}", h.Follow)
			r.Delete("/follows/{username}", h.Unfollow)

			r.Get("/notifications", h.ListNotifications)
			r.Put("/notifications/read", h.MarkNotificationsRead)

			r.Get("/chats/{username}", h.Conversation)
			r.Put("/chats/{username}/read", h.MarkChatRead)
		})
	})

	return r
}
