package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hayZedTech/vibestream-backend/internal/domain/model"
)

type createPostRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

type postResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())

	var req createPostRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Text == "" && req.ImageURL == "" {
		respondError(w, http.StatusBadRequest, "post needs text or an image")
		return
	}

	p := &model.Post{
		ID:       uuid.New().String(),
		Author:   identity,
		Text:     req.Text,
		ImageURL: req.ImageURL,
	}
	if err := h.posts.Create(r.Context(), p); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusCreated, postResponse{
		ID:        p.ID,
		Author:    p.Author,
		Text:      p.Text,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	var (
		posts []*model.Post
		err   error
	)
	if author := r.URL.Query().Get("author"); author != "" {
		posts, err = h.posts.ListByAuthor(r.Context(), author, offset, limit)
	} else {
		posts, err = h.posts.List(r.Context(), offset, limit)
	}
	if err != nil {
		h.fail(w, err)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		likes, _ := h.counters.LikeCount(r.Context(), p.ID)
		out = append(out, postResponse{
			ID:        p.ID,
			Author:    p.Author,
			Text:      p.Text,
			ImageURL:  p.ImageURL,
			Likes:     likes,
			CreatedAt: p.CreatedAt,
		})
	}
	respond(w, http.StatusOK, map[string]any{"posts": out})
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	postID := chi.URLParam(r, "postID")

	if _, err := h.posts.FindByID(r.Context(), postID); err != nil {
		h.fail(w, err)
		return
	}
	if err := h.posts.AddLike(r.Context(), postID, identity); err != nil {
		h.fail(w, err)
		return
	}
	h.counters.BumpLike(r.Context(), postID, 1)
	respond(w, http.StatusNoContent, nil)
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	postID := chi.URLParam(r, "postID")

	if err := h.posts.RemoveLike(r.Context(), postID, identity); err != nil {
		h.fail(w, err)
		return
	}
	h.counters.BumpLike(r.Context(), postID, -1)
	respond(w, http.StatusNoContent, nil)
}

type createCommentRequest struct {
	Text string `json:"text"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())
	postID := chi.URLParam(r, "postID")

	var req createCommentRequest
	if err := decodeBody(r, &req); err != nil || req.Text == "" {
		respondError(w, http.StatusBadRequest, "comment text is required")
		return
	}

	if _, err := h.posts.FindByID(r.Context(), postID); err != nil {
		h.fail(w, err)
		return
	}

	c := &model.Comment{
		ID:     uuid.New().String(),
		PostID: postID,
		Author: identity,
		Text:   req.Text,
	}
	if err := h.posts.AddComment(r.Context(), c); err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusCreated, c)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	offset, limit := pagination(r)

	comments, err := h.posts.ListComments(r.Context(), postID, offset, limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]any{"comments": comments})
}
