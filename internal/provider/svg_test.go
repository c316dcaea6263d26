package provider_test

import (
	"errors"
	"testing"

	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/provider"
)

func TestExtractSVG(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
		wantErr  bool
	}{
		{
			"fenced xml",
			"```xml\n<svg viewBox=\"0 0 512 512\">content</svg>\n```",
			`<svg viewBox="0 0 512 512">content</svg>`,
			false,
		},
		{
			"fenced svg",
			"```svg\n<svg>a</svg>\n```",
			"<svg>a</svg>",
			false,
		},
		{
			"bare svg with prose around it",
			"Here is your avatar:\n<svg viewBox=\"0 0 512 512\"><circle/></svg>\nEnjoy!",
			`<svg viewBox="0 0 512 512"><circle/></svg>`,
			false,
		},
		{
			"no svg at all",
			"Not an SVG",
			"",
			true,
		},
		{
			"closing tag before opening",
			"</svg> then <svg",
			"",
			true,
		},
		{
			"empty input",
			"",
			"",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.ExtractSVG(tt.content)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidOutput) {
					t.Fatalf("expected ErrInvalidOutput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
