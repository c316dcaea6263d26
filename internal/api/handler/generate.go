package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/avastudio/avatar-api/internal/api/response"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/service"
)

// GenerateHandler handles avatar generation
type GenerateHandler struct {
	generateService *service.GenerateService
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(generateService *service.GenerateService) *GenerateHandler {
	return &GenerateHandler{generateService: generateService}
}

type generateRequest struct {
	domain.RawStyleRequest
	Provider string `json:"provider" validate:"omitempty,max=50"`
}

type avatarPayload struct {
	ID       *int64 `json:"id"`
	SVG      string `json:"svg"`
	ImageURL string `json:"image_url,omitempty"`
}

type generateResponse struct {
	Success bool          `json:"success"`
	Avatar  avatarPayload `json:"avatar"`
}

// Generate runs the avatar pipeline for one request
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		response.BadRequest(w, "Content-Type must be application/json")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.generateService.Generate(r.Context(), req.RawStyleRequest, req.Provider)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	response.OK(w, generateResponse{
		Success: true,
		Avatar: avatarPayload{
			ID:       result.ID,
			SVG:      result.SVG,
			ImageURL: result.ImageURL,
		},
	})
}

// Fatal pipeline failures surface as 500 with a short message; internal
// detail stays in the server logs
func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrProviderNotConfigured):
		response.InternalError(w, "generation provider not configured")
	case errors.Is(err, domain.ErrProviderUnavailable):
		response.InternalError(w, "generation provider unavailable")
	case errors.Is(err, domain.ErrInvalidOutput):
		response.InternalError(w, "generation produced invalid output")
	case errors.Is(err, domain.ErrVectorizationFailed):
		response.InternalError(w, "vectorization failed")
	default:
		response.InternalError(w, "avatar generation failed")
	}
}
