package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type profileResponse struct {
	Username  string `json:"username"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Followers int64  `json:"followers"`
	Online    bool   `json:"online"`
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	u, err := h.users.FindByUsername(r.Context(), username)
	if err != nil {
		h.fail(w, err)
		return
	}

	followers, err := h.counters.FollowerCount(r.Context(), username)
	if err != nil {
		h.fail(w, err)
		return
	}

	_, online := h.hub.Lookup(username)
	respond(w, http.StatusOK, profileResponse{
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		Followers: followers,
		Online:    online,
	})
}

type updateProfileRequest struct {
	Bio string `json:"bio"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())

	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	u, err := h.users.FindByUsername(r.Context(), identity)
	if err != nil {
		h.fail(w, err)
		return
	}
	u.Bio = req.Bio
	if err := h.users.Update(r.Context(), u); err != nil {
		h.fail(w, err)
		return
	}
	h.enricher.Invalidate(identity)
	respond(w, http.StatusOK, map[string]string{"username": u.Username, "bio": u.Bio})
}

// UploadAvatar stores the blob and records its URL on the profile.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	identity := Identity(r.Context())

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		respondError(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	url, err := h.blobs.Store(r.Context(), header.Filename, file)
	if err != nil {
		h.fail(w, err)
		return
	}

	u, err := h.users.FindByUsername(r.Context(), identity)
	if err != nil {
		h.fail(w, err)
		return
	}
	u.AvatarURL = url
	if err := h.users.Update(r.Context(), u); err != nil {
		h.fail(w, err)
		return
	}
	h.enricher.Invalidate(identity)
	respond(w, http.StatusOK, map[string]string{"avatarUrl": url})
}
