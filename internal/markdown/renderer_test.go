package markdown

import (
	"strings"
	"testing"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

func TestGoldmarkRenderer_Render(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkRenderer_StrikethroughViaGFM(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	html, err := renderer.Render([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<del>gone</del>") {
		t.Fatalf("expected strikethrough markup, got %q", string(html))
	}
}

func TestGoldmarkRenderer_HardWraps(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	html, err := renderer.RenderWithOptions([]byte("line one\nline two"), interfaces.RenderOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "<br") {
		t.Fatalf("expected hard line breaks, got %q", string(html))
	}
}

func TestGoldmarkRenderer_SafeModeEscapesHTML(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	unsafe, err := renderer.Render([]byte("<em>raw</em>"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(unsafe), "<em>raw</em>") {
		t.Fatalf("expected raw HTML to pass through by default, got %q", string(unsafe))
	}

	safe, err := renderer.RenderWithOptions([]byte("<em>raw</em>"), interfaces.RenderOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}
	if strings.Contains(string(safe), "<em>raw</em>") {
		t.Fatalf("expected raw HTML to be suppressed in safe mode, got %q", string(safe))
	}
}

func TestCollectExtensionsFiltersUnknownNames(t *testing.T) {
	exts := collectExtensions([]string{"gfm", "nope", "GFM", "tasklist"})
	if len(exts) != 2 {
		t.Fatalf("expected duplicate and unknown names filtered, got %d extenders", len(exts))
	}
}
