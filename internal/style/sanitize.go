package style

import (
	"strings"
	"unicode/utf8"

	"github.com/avastudio/avatar-api/internal/domain"
)

const maxFieldLen = 100

// Sanitize normalizes an untrusted style request into a complete, bounded
// StyleConfig. It never fails: unusable fields fall back to their defaults.
func Sanitize(raw domain.RawStyleRequest) domain.StyleConfig {
	variant := domain.StyleVariant(raw.StyleVariant)
	if variant != domain.VariantGenderColors {
		variant = domain.VariantFeaturesColor
	}

	cfg := domain.StyleConfig{
		Variant:    variant,
		Features:   cleanField(raw.Features, domain.DefaultFeatures),
		ColorTheme: cleanField(raw.Color, domain.DefaultColorTheme),
		Gender:     cleanField(raw.Gender, domain.DefaultGender),
	}

	for _, c := range raw.Colors {
		cleaned := cleanField(c, "")
		if cleaned == "" {
			continue
		}
		cfg.Colors = append(cfg.Colors, cleaned)
	}

	return cfg
}

// cleanField truncates to maxFieldLen before stripping so the strip cost is
// bounded by the truncated length, then removes <>{} and trims whitespace.
func cleanField(s, fallback string) string {
	if len(s) > maxFieldLen {
		// Cutting at a byte boundary can leave a partial rune behind;
		// drop it so it cannot decode as U+FFFD downstream
		cut := maxFieldLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '<', '>', '{', '}':
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
