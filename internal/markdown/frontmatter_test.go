package markdown

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func TestEncodeAndParseExported(t *testing.T) {
	sum := sha256.Sum256([]byte(`{"root":{}}`))
	exported := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fm := buildFrontMatter("Release Notes", "release-notes", sum[:], exported)

	encoded, err := encodeExported(fm, "# Release Notes\nShipped.")
	if err != nil {
		t.Fatalf("encodeExported() error = %v", err)
	}
	if !strings.HasPrefix(string(encoded), "---\n") {
		t.Fatalf("expected frontmatter delimiter, got %q", string(encoded)[:16])
	}

	meta, body, err := ParseExported(encoded)
	if err != nil {
		t.Fatalf("ParseExported() error = %v", err)
	}
	if meta.Title != "Release Notes" || meta.Slug != "release-notes" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.Checksum != hex.EncodeToString(sum[:]) {
		t.Fatalf("checksum mismatch: %q", meta.Checksum)
	}
	if !meta.Exported.Equal(exported) {
		t.Fatalf("exported time mismatch: %v", meta.Exported)
	}
	if string(body) != "# Release Notes\nShipped.\n" {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestParseExportedRejectsMissingFrontmatter(t *testing.T) {
	if _, _, err := ParseExported([]byte("# no frontmatter here")); err == nil {
		t.Fatal("expected error for content without frontmatter")
	}
}
