package provider

import (
	"context"

	"github.com/avastudio/avatar-api/internal/domain"
)

// Provider defines the interface for artifact generation providers. A
// provider makes exactly one outbound call per Generate invocation; retry
// policy, if any, belongs to the caller.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// Kind returns the kind of artifact the provider produces
	Kind() domain.ArtifactKind

	// IsConfigured checks if the provider has valid credentials
	IsConfigured() bool

	// Generate produces a visual artifact from a composed request
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Artifact, error)
}
