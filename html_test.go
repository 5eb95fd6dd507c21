package sitegen

import (
	"reflect"
	"testing"
)

func TestExtractImageSourcesOrderAndDedup(t *testing.T) {
	doc := `<html><body>
<img src="images/a.png">
<img src="images/b.png" alt="b"/>
<img src="images/a.png">
<img src="https://example.org/c.png">
<img src="data:image/png;base64,AAAA">
<img alt="no source">
<img src="">
</body></html>`

	want := []string{
		"images/a.png",
		"images/b.png",
		"https://example.org/c.png",
		"data:image/png;base64,AAAA",
	}
	if got := ExtractImageSources(doc); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractImageSources = %v, want %v", got, want)
	}
}

func TestExtractImageSourcesMalformedMarkup(t *testing.T) {
	// Unclosed and stray tags must not abort the scan.
	doc := `<div><img src="one.png"<p><img src="two.png" />`
	got := ExtractImageSources(doc)
	if len(got) == 0 || got[len(got)-1] != "two.png" {
		t.Errorf("ExtractImageSources = %v, want it to reach two.png", got)
	}
}

func TestIsLocalSource(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"images/a.png", true},
		{"../shared/b.webp", true},
		{"https://example.org/c.png", false},
		{"http://example.org/c.png", false},
		{"data:image/png;base64,AAAA", false},
	}
	for _, tt := range tests {
		if got := isLocalSource(tt.src); got != tt.want {
			t.Errorf("isLocalSource(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}
