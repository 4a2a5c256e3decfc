package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeadersFromEnviron(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ []string
		want    []string
	}{
		{
			name:    "no matching entries",
			environ: []string{"PATH=/usr/bin", "HOME=/root"},
			want:    nil,
		},
		{
			name:    "single header",
			environ: []string{"CONFLUENCE_HEADER_X-Custom=value"},
			want:    []string{"X-Custom:value"},
		},
		{
			name: "multiple headers keep order",
			environ: []string{
				"CONFLUENCE_HEADER_X-First=1",
				"PATH=/usr/bin",
				"CONFLUENCE_HEADER_X-Second=2",
			},
			want: []string{"X-First:1", "X-Second:2"},
		},
		{
			name:    "value with colon kept verbatim",
			environ: []string{"CONFLUENCE_HEADER_Authorization=Bearer a:b:c"},
			want:    []string{"Authorization:Bearer a:b:c"},
		},
		{
			name:    "empty header name skipped",
			environ: []string{"CONFLUENCE_HEADER_=value"},
			want:    nil,
		},
		{
			name:    "other confluence variables ignored",
			environ: []string{"CONFLUENCE_API_URL=https://wiki.example.com"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := headersFromEnviron(tt.environ)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("headersFromEnviron() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEnvConfig(t *testing.T) {
	clearConfluenceEnv(t)
	t.Setenv("CONFLUENCE_API_URL", "https://wiki.example.com")
	t.Setenv("CONFLUENCE_SPACE", "DOCS")
	t.Setenv("CONFLUENCE_HEADER_X-Proxy", "internal")

	cfg := loadEnvConfig()
	if cfg.APIURL != "https://wiki.example.com" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, "https://wiki.example.com")
	}
	if cfg.Space != "DOCS" {
		t.Errorf("Space = %q, want %q", cfg.Space, "DOCS")
	}
	if diff := cmp.Diff([]string{"X-Proxy:internal"}, cfg.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if cfg.Username != "" || cfg.Password != "" {
		t.Errorf("unset credentials should be empty, got %q/%q", cfg.Username, cfg.Password)
	}
}
