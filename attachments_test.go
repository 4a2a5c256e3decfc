package md2confluence

import (
	"strings"
	"testing"
)

func TestResolveImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		src           string
		docDir        string
		wantFragment  string
		wantLocalPath string
	}{
		{
			name:          "https URL is external",
			src:           "https://cdn.example.com/a.png",
			docDir:        "/docs/posts",
			wantFragment:  `<ac:image><ri:url ri:value="https://cdn.example.com/a.png" /></ac:image>`,
			wantLocalPath: "",
		},
		{
			name:          "http URL is external",
			src:           "http://example.com/b.jpg",
			docDir:        "/docs",
			wantFragment:  `<ac:image><ri:url ri:value="http://example.com/b.jpg" /></ac:image>`,
			wantLocalPath: "",
		},
		{
			name:          "protocol-relative URL is external",
			src:           "//cdn.example.com/c.png",
			docDir:        "/docs",
			wantFragment:  `<ac:image><ri:url ri:value="//cdn.example.com/c.png" /></ac:image>`,
			wantLocalPath: "",
		},
		{
			name:          "relative path resolves against document directory",
			src:           "img/diagram.png",
			docDir:        "/docs/posts",
			wantFragment:  `<ac:image><ri:attachment ri:filename="diagram.png" /></ac:image>`,
			wantLocalPath: "/docs/posts/img/diagram.png",
		},
		{
			name:          "parent-relative path is normalized",
			src:           "../shared/logo.png",
			docDir:        "/docs/posts",
			wantFragment:  `<ac:image><ri:attachment ri:filename="logo.png" /></ac:image>`,
			wantLocalPath: "/docs/shared/logo.png",
		},
		{
			name:          "absolute local path is kept",
			src:           "/var/img/chart.png",
			docDir:        "/docs/posts",
			wantFragment:  `<ac:image><ri:attachment ri:filename="chart.png" /></ac:image>`,
			wantLocalPath: "/var/img/chart.png",
		},
		{
			name:          "bare filename",
			src:           "photo.png",
			docDir:        "/docs",
			wantFragment:  `<ac:image><ri:attachment ri:filename="photo.png" /></ac:image>`,
			wantLocalPath: "/docs/photo.png",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fragment, localPath := resolveImage(tt.src, tt.docDir)
			if fragment != tt.wantFragment {
				t.Errorf("fragment = %q, want %q", fragment, tt.wantFragment)
			}
			if localPath != tt.wantLocalPath {
				t.Errorf("localPath = %q, want %q", localPath, tt.wantLocalPath)
			}
		})
	}
}

func TestResolveImage_EscapesAttributeValues(t *testing.T) {
	t.Parallel()

	fragment, _ := resolveImage("https://example.com/a.png?x=1&y=2", "/docs")
	if !strings.Contains(fragment, "x=1&amp;y=2") {
		t.Errorf("attribute value not escaped: %s", fragment)
	}
	if strings.Contains(fragment, "&y=2\"") {
		t.Errorf("raw ampersand leaked into attribute: %s", fragment)
	}
}
