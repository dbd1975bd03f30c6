package frontmatter

import "testing"

func TestYAML_Extract(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		fallback  string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "title from frontmatter",
			content:   "---\ntitle: My Note\ntags: [a, b]\n---\nBody text",
			fallback:  "filename",
			wantTitle: "My Note",
			wantBody:  "Body text",
		},
		{
			name:      "no frontmatter falls back",
			content:   "Just body",
			fallback:  "filename",
			wantTitle: "filename",
			wantBody:  "Just body",
		},
		{
			name:      "frontmatter without title falls back",
			content:   "---\ntags: [a]\n---\nBody",
			fallback:  "filename",
			wantTitle: "filename",
			wantBody:  "Body",
		},
		{
			name:      "unterminated block is body",
			content:   "---\ntitle: Broken\nBody",
			fallback:  "filename",
			wantTitle: "filename",
			wantBody:  "---\ntitle: Broken\nBody",
		},
		{
			name:      "invalid yaml keeps content",
			content:   "---\n[not yaml\n---\nBody",
			fallback:  "filename",
			wantTitle: "filename",
			wantBody:  "---\n[not yaml\n---\nBody",
		},
		{
			name:      "numeric title is stringified",
			content:   "---\ntitle: 42\n---\nBody",
			fallback:  "filename",
			wantTitle: "42",
			wantBody:  "Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body, _ := (YAML{}).Extract(tt.content, tt.fallback)
			if title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, title)
			}
			if body != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, body)
			}
		})
	}
}

func TestYAML_ExtractMetadata(t *testing.T) {
	content := "---\ntitle: Note\ntags:\n  - go\n  - infra\n---\nBody"
	_, _, meta := (YAML{}).Extract(content, "fallback")

	if meta["title"] != "Note" {
		t.Errorf("expected title in metadata, got %v", meta["title"])
	}
	tags, ok := meta["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("expected 2 tags, got %v", meta["tags"])
	}
}

func TestBasic_Extract(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		fallback  string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "quoted title",
			content:   "---\ntitle: \"Quoted Title\"\n---\nBody",
			fallback:  "filename",
			wantTitle: "Quoted Title",
			wantBody:  "Body",
		},
		{
			name:      "single quoted title",
			content:   "---\ntitle: 'Also Quoted'\n---\nBody",
			fallback:  "filename",
			wantTitle: "Also Quoted",
			wantBody:  "Body",
		},
		{
			name:      "no title line",
			content:   "---\ntags: whatever\n---\nBody",
			fallback:  "filename",
			wantTitle: "filename",
			wantBody:  "Body",
		},
		{
			name:      "no frontmatter",
			content:   "Body only",
			fallback:  "filename",
			wantTitle: "filename",
			wantBody:  "Body only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body, meta := (Basic{}).Extract(tt.content, tt.fallback)
			if title != tt.wantTitle {
				t.Errorf("expected title %q, got %q", tt.wantTitle, title)
			}
			if body != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, body)
			}
			if len(meta) != 0 {
				t.Errorf("basic extractor must not expose metadata, got %v", meta)
			}
		})
	}
}

func TestForName(t *testing.T) {
	if _, ok := ForName("basic").(Basic); !ok {
		t.Error("expected basic extractor")
	}
	if _, ok := ForName("yaml").(YAML); !ok {
		t.Error("expected yaml extractor")
	}
	if _, ok := ForName("unknown").(YAML); !ok {
		t.Error("unknown name must fall back to yaml")
	}
}
