package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/provider"
	"github.com/avastudio/avatar-api/internal/repository/redis"
	"github.com/avastudio/avatar-api/internal/security"
	"github.com/avastudio/avatar-api/internal/storage"
	"github.com/avastudio/avatar-api/internal/style"
	"github.com/avastudio/avatar-api/internal/vectorize"
)

// GenerateResult is the outcome of a full pipeline run. ID is nil when
// the avatar was generated but not persisted.
type GenerateResult struct {
	ID       *int64
	SVG      string
	ImageURL string
}

// GenerateService runs the avatar pipeline: sanitize the style request,
// compose the prompt, call the provider, post-process the artifact and
// persist the result best-effort.
type GenerateService struct {
	providers    *provider.Registry
	avatarRepo   domain.AvatarRepository
	blobs        storage.BlobStore
	galleryCache *redis.GalleryCache
	pipeline     config.PipelineConfig
	httpClient   *http.Client
	seedFn       func() int64
}

// NewGenerateService creates a new generate service. galleryCache may be nil.
func NewGenerateService(
	providers *provider.Registry,
	avatarRepo domain.AvatarRepository,
	blobs storage.BlobStore,
	galleryCache *redis.GalleryCache,
	pipeline config.PipelineConfig,
) *GenerateService {
	return &GenerateService{
		providers:    providers,
		avatarRepo:   avatarRepo,
		blobs:        blobs,
		galleryCache: galleryCache,
		pipeline:     pipeline,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		seedFn: func() int64 {
			return rand.Int63n(1_000_000) + 1
		},
	}
}

// Generate runs the pipeline for one style request
func (s *GenerateService) Generate(ctx context.Context, raw domain.RawStyleRequest, providerName string) (*GenerateResult, error) {
	cfg := style.Sanitize(raw)
	req := style.Compose(cfg, s.seedFn())

	p, err := s.providers.Get(providerName)
	if err != nil {
		return nil, err
	}

	genCtx := ctx
	if s.pipeline.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.pipeline.ProviderTimeout)
		defer cancel()
	}

	artifact, err := p.Generate(genCtx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate avatar: %w", err)
	}

	if artifact.Kind == domain.ArtifactRaster {
		artifact, err = s.processRaster(ctx, artifact)
		if err != nil {
			return nil, err
		}
	}

	if artifact.Kind == domain.ArtifactSVG {
		artifact = s.sanitizeSVG(artifact)
		// Providers are instructed to emit a single viewBox-scoped root;
		// markup that drifts from that is logged but still served
		if err := security.ValidateSVGRoot(artifact.SVG); err != nil {
			log.Warn().Err(err).Msg("generated svg failed root validation")
		}
	}

	result := &GenerateResult{
		SVG:      artifact.SVG,
		ImageURL: artifact.ImageURL,
	}

	// Persistence is best-effort: a store failure degrades to an
	// unsaved avatar instead of failing the request
	avatar := &domain.Avatar{
		SVGContent:   artifact.SVG,
		ImageURL:     artifact.ImageURL,
		Prompt:       req.Prompt,
		StyleTags:    req.Tags,
		ColorPalette: style.Palette(cfg),
	}
	id, err := s.avatarRepo.Insert(ctx, avatar)
	if err != nil {
		log.Warn().Err(err).Msg("failed to persist avatar, returning unsaved result")
		return result, nil
	}
	result.ID = &id

	if s.galleryCache != nil {
		if _, err := s.galleryCache.FlushAll(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush gallery cache")
		}
	}

	return result, nil
}

// processRaster either vectorizes the raster into SVG or re-hosts it in
// the blob bucket for a stable URL
func (s *GenerateService) processRaster(ctx context.Context, artifact *domain.Artifact) (*domain.Artifact, error) {
	data, contentType, err := s.fetchRaster(ctx, artifact.ImageURL)
	if err != nil {
		if s.pipeline.VectorizeRaster {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		// Without vectorization the provider URL is still usable as-is
		log.Warn().Err(err).Msg("failed to fetch raster, keeping provider url")
		return artifact, nil
	}

	if s.pipeline.VectorizeRaster {
		opts := vectorize.DefaultOptions()
		if s.pipeline.PaletteSize > 0 {
			opts.NumberOfColors = s.pipeline.PaletteSize
		}
		svg, err := vectorize.FromBytes(data, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to vectorize raster: %w", err)
		}
		return &domain.Artifact{Kind: domain.ArtifactSVG, SVG: svg}, nil
	}

	key := fmt.Sprintf("avatars/%s%s", uuid.New().String(), extensionFor(contentType))
	url, err := s.blobs.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		log.Warn().Err(err).Msg("failed to upload raster, keeping provider url")
		return artifact, nil
	}

	hosted := *artifact
	hosted.ImageURL = url
	return &hosted, nil
}

func (s *GenerateService) sanitizeSVG(artifact *domain.Artifact) *domain.Artifact {
	cleaned := *artifact
	cleaned.SVG = security.SanitizeSVG(artifact.SVG)
	return &cleaned
}

func (s *GenerateService) fetchRaster(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build raster request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch raster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("raster fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read raster body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	default:
		return ""
	}
}
