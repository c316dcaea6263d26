package pollinations_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/provider/pollinations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) *pollinations.Provider {
	return pollinations.NewProvider(config.PollinationsConfig{
		BaseURL: baseURL,
		Width:   1024,
		Height:  1024,
	})
}

func TestGenerate_ReturnsReachableURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/prompt/")
		assert.Equal(t, "7", r.URL.Query().Get("seed"))
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	artifact, err := p.Generate(context.Background(), domain.GenerationRequest{
		Prompt: "a monkey avatar",
		Seed:   7,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ArtifactRaster, artifact.Kind)
	assert.Contains(t, artifact.ImageURL, srv.URL)
	assert.Equal(t, "image/png", artifact.ContentType)
}

func TestGenerate_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})

	assert.True(t, errors.Is(err, domain.ErrProviderUnavailable))
}

func TestGenerate_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := newTestProvider(srv.URL)
	_, err := p.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})

	assert.True(t, errors.Is(err, domain.ErrProviderUnavailable))
}
