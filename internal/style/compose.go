package style

import (
	"fmt"
	"strings"

	"github.com/avastudio/avatar-api/internal/domain"
)

// ArtStyle is the fixed rendering style recorded in every style-tag record
const ArtStyle = "Flat Vector Art"

const basePrompt = "A flat vector art avatar of a MONKEY (Ape/Chimp). " +
	"The monkey's face AND head must be fully visible and centered. NOT zoomed in. " +
	"Leave space around the head. Simple geometric shapes. Cute and cool expression."

const universalPrompt = "Generate an original avatar in a minimalist vector style, " +
	"framed from the bust to the shoulders: character seen from the front with a round head, " +
	"very simple eyes and mouth, stylized hair in a few shapes, body reduced to the shoulders " +
	"and upper torso, flat colors with a maximum of 3-4 colors, sharp outlines, " +
	"plain colored background, no text or logo."

// Compose renders a sanitized style configuration into a generation request.
// Deterministic for a fixed seed: the seed exists only to defeat upstream
// caching and never alters visible style semantics.
func Compose(cfg domain.StyleConfig, seed int64) domain.GenerationRequest {
	tags := domain.StyleTags{Style: ArtStyle}

	var b strings.Builder
	switch cfg.Variant {
	case domain.VariantGenderColors:
		tags.Gender = cfg.Gender
		tags.Colors = cfg.Colors

		b.WriteString(universalPrompt)
		fmt.Fprintf(&b, "\nGender: %s", cfg.Gender)
		if len(cfg.Colors) > 0 {
			fmt.Fprintf(&b, "\nColor Palette (use ONLY these plus black and white): %s",
				strings.Join(cfg.Colors, ", "))
		}
	default:
		tags.Features = cfg.Features
		tags.ColorTheme = cfg.ColorTheme

		b.WriteString(basePrompt)
		fmt.Fprintf(&b, "\nStyle: %s", ArtStyle)
		fmt.Fprintf(&b, "\nFeatures: %s", cfg.Features)
		fmt.Fprintf(&b, "\nColor Theme: %s", cfg.ColorTheme)
	}

	return domain.GenerationRequest{
		Prompt: b.String(),
		Tags:   tags,
		Seed:   seed,
	}
}

// Palette returns the color summary stored in the avatar record
func Palette(cfg domain.StyleConfig) string {
	if cfg.Variant == domain.VariantGenderColors && len(cfg.Colors) > 0 {
		return strings.Join(cfg.Colors, ",")
	}
	return cfg.ColorTheme
}
