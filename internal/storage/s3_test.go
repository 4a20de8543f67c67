package storage

import "testing"

func TestFileURL(t *testing.T) {
	t.Run("uses public URL when configured", func(t *testing.T) {
		c := &Client{bucket: "media", endpoint: "https://s3.example.com", publicURL: "https://cdn.example.com"}
		if got := c.FileURL("uploads/cover.jpg"); got != "https://cdn.example.com/uploads/cover.jpg" {
			t.Errorf("FileURL = %q", got)
		}
	})

	t.Run("falls back to path-style URL", func(t *testing.T) {
		c := &Client{bucket: "media", endpoint: "https://s3.example.com"}
		if got := c.FileURL("uploads/cover.jpg"); got != "https://s3.example.com/media/uploads/cover.jpg" {
			t.Errorf("FileURL = %q", got)
		}
	})
}

func TestExtractKey(t *testing.T) {
	c := &Client{bucket: "media", endpoint: "https://s3.example.com", publicURL: "https://cdn.example.com"}

	tests := []struct {
		url     string
		wantKey string
		wantOK  bool
	}{
		{"https://cdn.example.com/uploads/a.png", "uploads/a.png", true},
		{"https://s3.example.com/media/uploads/b.png", "uploads/b.png", true},
		{"https://elsewhere.example.com/c.png", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		key, ok := c.ExtractKey(tt.url)
		if key != tt.wantKey || ok != tt.wantOK {
			t.Errorf("ExtractKey(%q) = (%q, %v), want (%q, %v)", tt.url, key, ok, tt.wantKey, tt.wantOK)
		}
	}
}
