package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avastudio/avatar-api/internal/api/middleware"
	"github.com/avastudio/avatar-api/internal/api/response"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/service"
)

// VoteHandler handles like toggles and like/dislike votes
type VoteHandler struct {
	voteService *service.VoteService
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(voteService *service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// ToggleLike flips the caller's like on an avatar
func (h *VoteHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := avatarID(r)
	if err != nil {
		response.BadRequest(w, "invalid avatar id")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	status, err := h.voteService.ToggleLike(r.Context(), id, userID)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	response.OK(w, status)
}

type voteRequest struct {
	Vote domain.VoteType `json:"vote" validate:"required,oneof=like dislike none"`
}

// CastVote records the caller's like/dislike on an avatar
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	id, err := avatarID(r)
	if err != nil {
		response.BadRequest(w, "invalid avatar id")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "vote must be like, dislike or none")
		return
	}

	status, err := h.voteService.CastVote(r.Context(), id, userID, req.Vote)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	response.OK(w, status)
}

func writeVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		response.Unauthorized(w, "authentication required")
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "avatar not found")
	case errors.Is(err, domain.ErrStoreNotConfigured):
		response.Unavailable(w, "store not configured")
	default:
		response.InternalError(w, "vote operation failed")
	}
}
