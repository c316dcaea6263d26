package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avastudio/avatar-api/internal/api/response"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/service"
)

// AvatarHandler serves the stored avatar collection
type AvatarHandler struct {
	galleryService *service.GalleryService
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(galleryService *service.GalleryService) *AvatarHandler {
	return &AvatarHandler{galleryService: galleryService}
}

type listResponse struct {
	Success bool            `json:"success"`
	Avatars []domain.Avatar `json:"avatars"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// List returns a page of avatars newest first
func (h *AvatarHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 0)
	if !ok {
		response.BadRequest(w, "invalid limit")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		response.BadRequest(w, "invalid offset")
		return
	}

	limit, offset = service.ClampPage(limit, offset)

	avatars, total, err := h.galleryService.List(r.Context(), limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if avatars == nil {
		avatars = []domain.Avatar{}
	}

	response.OK(w, listResponse{
		Success: true,
		Avatars: avatars,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// Get returns a single avatar
func (h *AvatarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := avatarID(r)
	if err != nil {
		response.BadRequest(w, "invalid avatar id")
		return
	}

	avatar, err := h.galleryService.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	response.OK(w, avatar)
}

// Delete removes an avatar. Reachable only behind the admin gate.
func (h *AvatarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := avatarID(r)
	if err != nil {
		response.BadRequest(w, "invalid avatar id")
		return
	}

	if err := h.galleryService.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	response.NoContent(w)
}

func avatarID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "avatarID"), 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "avatar not found")
	case errors.Is(err, domain.ErrStoreNotConfigured):
		response.Unavailable(w, "store not configured")
	default:
		response.InternalError(w, "storage operation failed")
	}
}
