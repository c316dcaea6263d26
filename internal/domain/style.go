package domain

// StyleVariant discriminates the shape of the generate request body
type StyleVariant string

const (
	VariantFeaturesColor StyleVariant = "features-color"
	VariantGenderColors  StyleVariant = "gender-colors"
)

// Per-field fallbacks used when input is missing or unusable after cleaning
const (
	DefaultFeatures   = "Standard"
	DefaultColorTheme = "Vibrant"
	DefaultGender     = "Neutral"
)

// RawStyleRequest is the untrusted generate request body. All fields are
// optional; which ones matter depends on StyleVariant.
type RawStyleRequest struct {
	StyleVariant string   `json:"styleVariant"`
	Features     string   `json:"features"`
	Color        string   `json:"color"`
	Gender       string   `json:"gender"`
	Colors       []string `json:"colors"`
}

// StyleConfig is the sanitized, bounded style configuration. Immutable once
// built; every field is at most 100 characters and free of <>{}.
type StyleConfig struct {
	Variant    StyleVariant
	Features   string
	ColorTheme string
	Gender     string
	Colors     []string
}

// StyleTags is the structured echo of the style configuration stored
// alongside the prompt for later filtering
type StyleTags struct {
	Features   string   `json:"features,omitempty"`
	ColorTheme string   `json:"colorTheme,omitempty"`
	Gender     string   `json:"gender,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Style      string   `json:"style"`
}

// GenerationRequest is the composed prompt plus the style-tag record.
// Consumed once by a provider; embedded into the stored avatar record.
type GenerationRequest struct {
	Prompt string
	Tags   StyleTags
	Seed   int64
}
