package md2confluence

import "testing"

func TestDocument_DerivedPaths(t *testing.T) {
	t.Parallel()

	doc := &Document{
		AbsolutePath: "/docs/posts/intro.md",
		RelativePath: "posts/intro.md",
	}

	if got := doc.Name(); got != "intro.md" {
		t.Errorf("Name() = %q, want %q", got, "intro.md")
	}
	if got := doc.Dir(); got != "/docs/posts" {
		t.Errorf("Dir() = %q, want %q", got, "/docs/posts")
	}
	if got := doc.Parent(); got != "posts" {
		t.Errorf("Parent() = %q, want %q", got, "posts")
	}
	if !doc.IsMarkdown() {
		t.Error("IsMarkdown() = false, want true")
	}
}

func TestDocument_ParentAtRoot(t *testing.T) {
	t.Parallel()

	doc := &Document{
		AbsolutePath: "/docs/intro.md",
		RelativePath: "intro.md",
	}
	if got := doc.Parent(); got != "" {
		t.Errorf("Parent() = %q, want empty", got)
	}
}

func TestDocument_IsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/docs/a.md", true},
		{"/docs/a.markdown", false},
		{"/docs/a.txt", false},
		{"/docs/md", false},
	}

	for _, tt := range tests {
		doc := &Document{AbsolutePath: tt.path, RelativePath: tt.path}
		if got := doc.IsMarkdown(); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDocument_IDLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		relative string
		want     string
	}{
		{
			name:     "plain path",
			relative: "posts/intro.md",
			want:     "aid_posts/intro_md",
		},
		{
			name:     "invalid characters replaced",
			relative: "my post (v2).md",
			want:     "aid_my_post__v2__md",
		},
		{
			name:     "punctuation replaced",
			relative: "a:b;c@d.md",
			want:     "aid_a_b_c_d_md",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &Document{RelativePath: tt.relative}
			if got := doc.IDLabel(); got != tt.want {
				t.Errorf("IDLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
