package pollinations

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/domain"
)

// Provider implements provider.Provider against the Pollinations image
// endpoint. The prompt is encoded into the image URL; a single GET confirms
// the URL is actually servable before it is handed forward as the artifact.
type Provider struct {
	baseURL string
	width   int
	height  int
	client  *http.Client
}

// NewProvider creates a new Pollinations raster provider
func NewProvider(cfg config.PollinationsConfig) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Provider{
		baseURL: cfg.BaseURL,
		width:   cfg.Width,
		height:  cfg.Height,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *Provider) Name() string {
	return "pollinations"
}

func (p *Provider) Kind() domain.ArtifactKind {
	return domain.ArtifactRaster
}

// IsConfigured always holds: the endpoint needs no credentials
func (p *Provider) IsConfigured() bool {
	return p.baseURL != ""
}

// Generate builds the image URL and confirms reachability
func (p *Provider) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Artifact, error) {
	enhanced := req.Prompt + " avatar, flat vector art, minimalist, professional, vibrant colors"

	imageURL := fmt.Sprintf(
		"%s/prompt/%s?width=%d&height=%d&seed=%d&nologo=true&model=flux&enhance=true",
		p.baseURL, url.PathEscape(enhanced), p.width, p.height, req.Seed,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: generation endpoint returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return &domain.Artifact{
		Kind:        domain.ArtifactRaster,
		ImageURL:    resp.Request.URL.String(),
		ContentType: contentType,
	}, nil
}
