package provider

import (
	"strings"

	"github.com/avastudio/avatar-api/internal/domain"
)

// ExtractSVG locates the SVG document inside a model response. Markdown
// code-fence markers are stripped first, then the slice from the first
// "<svg" to the last "</svg>" (inclusive) is returned exactly.
func ExtractSVG(content string) (string, error) {
	content = strings.ReplaceAll(content, "```xml", "")
	content = strings.ReplaceAll(content, "```svg", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "<svg")
	end := strings.LastIndex(content, "</svg>")
	if start == -1 || end == -1 || end < start {
		return "", domain.ErrInvalidOutput
	}

	return content[start : end+len("</svg>")], nil
}
