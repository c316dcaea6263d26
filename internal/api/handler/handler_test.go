package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avastudio/avatar-api/internal/api/handler"
	"github.com/avastudio/avatar-api/internal/api/middleware"
	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/provider"
	"github.com/avastudio/avatar-api/internal/repository/null"
	"github.com/avastudio/avatar-api/internal/service"
	"github.com/avastudio/avatar-api/internal/storage"
)

const stubSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 512 512"><circle cx="256" cy="256" r="200"/></svg>`

// stubProvider returns a fixed artifact
type stubProvider struct {
	artifact *domain.Artifact
	err      error
}

func (p *stubProvider) Name() string              { return "stub" }
func (p *stubProvider) Kind() domain.ArtifactKind { return domain.ArtifactSVG }
func (p *stubProvider) IsConfigured() bool        { return true }
func (p *stubProvider) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Artifact, error) {
	return p.artifact, p.err
}

func newStubGenerateHandler(p provider.Provider) *handler.GenerateHandler {
	registry := provider.NewRegistry("stub")
	registry.Register(p)

	svc := service.NewGenerateService(registry, null.AvatarStore{}, storage.NullStore{}, nil, config.PipelineConfig{})
	return handler.NewGenerateHandler(svc)
}

func makeJSONRequest(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", response["status"])
	}
}

func TestGenerateHandler_ContentTypeRequired(t *testing.T) {
	h := newStubGenerateHandler(&stubProvider{artifact: &domain.Artifact{Kind: domain.ArtifactSVG, SVG: stubSVG}})

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "Content-Type must be application/json" {
		t.Errorf("unexpected error message: %q", response["error"])
	}
}

func TestGenerateHandler_RoundTrip(t *testing.T) {
	h := newStubGenerateHandler(&stubProvider{artifact: &domain.Artifact{Kind: domain.ArtifactSVG, SVG: `<svg>mock</svg>`}})

	req := makeJSONRequest(http.MethodPost, "/api/generate", map[string]string{
		"features": "sunglasses",
		"color":    "teal",
	})
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var response struct {
		Success bool `json:"success"`
		Avatar  struct {
			ID  *int64 `json:"id"`
			SVG string `json:"svg"`
		} `json:"avatar"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !response.Success {
		t.Error("expected success to be true")
	}
	// Null store means the avatar is generated but unsaved
	if response.Avatar.ID != nil {
		t.Errorf("expected null id, got %v", *response.Avatar.ID)
	}
	if response.Avatar.SVG != `<svg>mock</svg>` {
		t.Errorf("unexpected svg content: %q", response.Avatar.SVG)
	}
}

func TestGenerateHandler_InvalidBody(t *testing.T) {
	h := newStubGenerateHandler(&stubProvider{artifact: &domain.Artifact{Kind: domain.ArtifactSVG, SVG: stubSVG}})

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGenerateHandler_ProviderFailure(t *testing.T) {
	h := newStubGenerateHandler(&stubProvider{err: domain.ErrProviderUnavailable})

	req := makeJSONRequest(http.MethodPost, "/api/generate", map[string]string{"features": "hat"})
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestAvatarHandler_ListWithoutStore(t *testing.T) {
	galleryService := service.NewGalleryService(null.AvatarStore{}, storage.NullStore{}, nil)
	h := handler.NewAvatarHandler(galleryService)

	req := httptest.NewRequest(http.MethodGet, "/api/avatars", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestAvatarHandler_ListRejectsBadPaging(t *testing.T) {
	galleryService := service.NewGalleryService(null.AvatarStore{}, storage.NullStore{}, nil)
	h := handler.NewAvatarHandler(galleryService)

	req := httptest.NewRequest(http.MethodGet, "/api/avatars?limit=abc", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestVoteHandler_LikeWithoutStore(t *testing.T) {
	voteService := service.NewVoteService(null.AvatarStore{}, null.LikeStore{}, null.VoteStore{})
	h := handler.NewVoteHandler(voteService)

	req := makeJSONRequest(http.MethodPost, "/api/avatars/1/like", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("avatarID", "1")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.UserIDKey, uuid.New())
	rec := httptest.NewRecorder()

	h.ToggleLike(rec, req.WithContext(ctx))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestVoteHandler_CastVoteInvalidType(t *testing.T) {
	voteService := service.NewVoteService(null.AvatarStore{}, null.LikeStore{}, null.VoteStore{})
	h := handler.NewVoteHandler(voteService)

	req := makeJSONRequest(http.MethodPost, "/api/avatars/1/vote", map[string]string{"vote": "meh"})
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("avatarID", "1")
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.UserIDKey, uuid.New())
	rec := httptest.NewRecorder()

	h.CastVote(rec, req.WithContext(ctx))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
