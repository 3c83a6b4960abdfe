package news

import "testing"

func TestArticle_HasURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"empty", "", false},
		{"literal null", "null", false},
		{"whitespace only", "   ", false},
		{"valid", "https://www.nytimes.com/story.html", true},
		{"plain http", "http://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{URL: tt.url}
			if got := a.HasURL(); got != tt.want {
				t.Errorf("HasURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestArticle_ImageURL(t *testing.T) {
	a := Article{}
	if got := a.ImageURL(); got != "" {
		t.Errorf("expected empty image URL, got %q", got)
	}

	a.Multimedia = []Multimedia{{URL: ""}, {URL: "https://static.example.com/pic.jpg"}}
	if got := a.ImageURL(); got != "https://static.example.com/pic.jpg" {
		t.Errorf("expected first non-empty media URL, got %q", got)
	}
}
