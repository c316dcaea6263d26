package domain

import (
	"context"
	"time"
)

// ArtifactKind discriminates generated output types
type ArtifactKind string

const (
	ArtifactSVG    ArtifactKind = "svg"
	ArtifactRaster ArtifactKind = "raster"
)

// Artifact is the generated visual output: either raw SVG markup or a
// reference to a raster image. Stages never mutate an Artifact in place.
type Artifact struct {
	Kind        ArtifactKind
	SVG         string
	ImageURL    string
	ContentType string
}

// Avatar represents a persisted avatar record
type Avatar struct {
	ID           int64     `json:"id"`
	SVGContent   string    `json:"svg_content,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Prompt       string    `json:"prompt"`
	StyleTags    StyleTags `json:"style_tags"`
	ColorPalette string    `json:"color_palette"`
	CreatedAt    time.Time `json:"created_at"`
	Likes        int       `json:"likes"`
	Score        int       `json:"score"`
}

// AvatarRepository defines avatar persistence operations
type AvatarRepository interface {
	// Insert stores a new avatar and returns the assigned ID
	Insert(ctx context.Context, avatar *Avatar) (int64, error)

	// Get returns a single avatar by ID
	Get(ctx context.Context, id int64) (*Avatar, error)

	// List returns avatars newest first plus the total record count
	List(ctx context.Context, limit, offset int) ([]Avatar, int64, error)

	// Delete removes an avatar record
	Delete(ctx context.Context, id int64) error
}
