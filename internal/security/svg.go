package security

import (
	"regexp"
	"strings"
)

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	eventAttrPattern   = regexp.MustCompile(`(?i) on\w+="[^"]*"`)
	jsURIPattern       = regexp.MustCompile(`(?i)javascript:`)
	viewBoxAttrPattern = regexp.MustCompile(`(?i)\bviewBox\s*=\s*"[^"]*"`)
	svgOpenTagPattern  = regexp.MustCompile(`(?i)<svg\b`)
)

// SanitizeSVG strips executable content from SVG markup: <script> blocks,
// inline on* event handler attributes and javascript: URI schemes. Each
// pattern is removed to a fixpoint so the result is idempotent even for
// payloads crafted to reassemble after a single removal pass.
func SanitizeSVG(svg string) string {
	for {
		cleaned := scriptBlockPattern.ReplaceAllString(svg, "")
		cleaned = eventAttrPattern.ReplaceAllString(cleaned, "")
		cleaned = jsURIPattern.ReplaceAllString(cleaned, "")
		if cleaned == svg {
			return cleaned
		}
		svg = cleaned
	}
}

// SVGValidationError reports why SVG markup was rejected
type SVGValidationError struct {
	Message string
}

func (e *SVGValidationError) Error() string {
	return e.Message
}

// ValidateSVGRoot checks that markup is well-formed enough to render: a
// single root <svg> element carrying a viewBox attribute. It does not judge
// visual correctness.
func ValidateSVGRoot(svg string) error {
	trimmed := strings.TrimSpace(svg)
	if trimmed == "" {
		return &SVGValidationError{Message: "empty SVG document"}
	}

	if !strings.HasPrefix(strings.ToLower(trimmed), "<svg") {
		return &SVGValidationError{Message: "document does not start with an <svg> element"}
	}
	if !strings.HasSuffix(strings.ToLower(trimmed), "</svg>") {
		return &SVGValidationError{Message: "document does not end with </svg>"}
	}

	if len(svgOpenTagPattern.FindAllStringIndex(trimmed, -1)) != 1 {
		return &SVGValidationError{Message: "document must contain exactly one root <svg> element"}
	}

	rootEnd := strings.Index(trimmed, ">")
	if rootEnd == -1 || !viewBoxAttrPattern.MatchString(trimmed[:rootEnd+1]) {
		return &SVGValidationError{Message: "root <svg> element is missing a viewBox attribute"}
	}

	return nil
}
