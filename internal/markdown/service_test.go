package markdown

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-richtext/pkg/interfaces"
	"github.com/goliatone/go-richtext/pkg/testsupport"
)

const welcomeMarkdown = "# Welcome\nHello world.\n- first\n- second"

func TestServiceExportFileWritesFrontmatter(t *testing.T) {
	base := t.TempDir()
	output := t.TempDir()
	state := copyFixture(t, base, "welcome.json")

	svc := newExportService(t, Config{BasePath: base, OutputDir: output})

	file, err := svc.ExportFile(context.Background(), "welcome.json", interfaces.FileExportOptions{})
	if err != nil {
		t.Fatalf("ExportFile() error = %v", err)
	}

	if file.Title != "Welcome" || file.Slug != "welcome" {
		t.Fatalf("unexpected metadata: title=%q slug=%q", file.Title, file.Slug)
	}
	if file.Markdown != welcomeMarkdown {
		t.Fatalf("unexpected markdown:\n%q", file.Markdown)
	}
	if file.OutputPath != filepath.Join(output, "welcome.md") {
		t.Fatalf("unexpected output path %q", file.OutputPath)
	}

	written, err := os.ReadFile(file.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	meta, body, err := ParseExported(written)
	if err != nil {
		t.Fatalf("ParseExported() error = %v", err)
	}
	if meta.Title != "Welcome" || meta.Slug != "welcome" {
		t.Fatalf("unexpected frontmatter: %+v", meta)
	}
	sum := sha256.Sum256(state)
	if meta.Checksum != hex.EncodeToString(sum[:]) {
		t.Fatalf("frontmatter checksum mismatch: %q", meta.Checksum)
	}
	if string(body) != welcomeMarkdown+"\n" {
		t.Fatalf("unexpected body:\n%q", string(body))
	}
}

func TestServiceExportFileSkipsUnchanged(t *testing.T) {
	base := t.TempDir()
	output := t.TempDir()
	copyFixture(t, base, "welcome.json")

	svc := newExportService(t, Config{BasePath: base, OutputDir: output})
	ctx := context.Background()

	first, err := svc.ExportFile(ctx, "welcome.json", interfaces.FileExportOptions{})
	if err != nil {
		t.Fatalf("ExportFile() first run error = %v", err)
	}
	if first.Skipped {
		t.Fatal("first export should write, not skip")
	}

	second, err := svc.ExportFile(ctx, "welcome.json", interfaces.FileExportOptions{})
	if err != nil {
		t.Fatalf("ExportFile() second run error = %v", err)
	}
	if !second.Skipped {
		t.Fatal("unchanged source should be skipped")
	}

	forced, err := svc.ExportFile(ctx, "welcome.json", interfaces.FileExportOptions{Force: true})
	if err != nil {
		t.Fatalf("ExportFile() forced run error = %v", err)
	}
	if forced.Skipped {
		t.Fatal("force should bypass the checksum skip")
	}
}

func TestServiceExportFileWithoutOutputDir(t *testing.T) {
	base := t.TempDir()
	copyFixture(t, base, "welcome.json")

	svc := newExportService(t, Config{BasePath: base})

	file, err := svc.ExportFile(context.Background(), "welcome.json", interfaces.FileExportOptions{})
	if err != nil {
		t.Fatalf("ExportFile() error = %v", err)
	}
	if file.OutputPath != "" {
		t.Fatalf("expected serialize-only run, got output path %q", file.OutputPath)
	}
	if file.Markdown != welcomeMarkdown {
		t.Fatalf("unexpected markdown %q", file.Markdown)
	}
}

func TestServiceExportFileValidatesState(t *testing.T) {
	base := t.TempDir()
	writeState(t, base, "broken.json", `{"root": {"children": [{"text": "no type"}]}}`)

	svc := newExportService(t, Config{BasePath: base})

	_, err := svc.ExportFile(context.Background(), "broken.json", interfaces.FileExportOptions{
		Export: interfaces.ExportOptions{ValidateState: true},
	})
	if err == nil {
		t.Fatal("expected schema validation failure")
	}
}

func TestServiceExportDirectory(t *testing.T) {
	base := t.TempDir()
	output := t.TempDir()
	copyFixture(t, base, "a.json")
	copyFixture(t, base, "b.json")
	writeState(t, base, "notes.txt", "not an editor state")
	if err := os.MkdirAll(filepath.Join(base, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	copyFixture(t, base, filepath.Join("nested", "c.json"))

	svc := newExportService(t, Config{BasePath: base, OutputDir: output})
	ctx := context.Background()

	report, err := svc.ExportDirectory(ctx, ".", interfaces.FileExportOptions{})
	if err != nil {
		t.Fatalf("ExportDirectory() error = %v", err)
	}
	if len(report.Files) != 2 {
		t.Fatalf("non-recursive walk should find 2 files, got %d", len(report.Files))
	}

	recursive := true
	report, err = svc.ExportDirectory(ctx, ".", interfaces.FileExportOptions{Recursive: &recursive, Force: true})
	if err != nil {
		t.Fatalf("ExportDirectory() recursive error = %v", err)
	}
	if len(report.Files) != 3 {
		t.Fatalf("recursive walk should find 3 files, got %d", len(report.Files))
	}
	if report.Written != 3 {
		t.Fatalf("expected 3 written, got %d", report.Written)
	}
}

func TestServiceExportDirectoryCollectsErrors(t *testing.T) {
	base := t.TempDir()
	output := t.TempDir()
	copyFixture(t, base, "good.json")
	writeState(t, base, "bad.json", "{truncated")

	svc := newExportService(t, Config{BasePath: base, OutputDir: output})

	report, err := svc.ExportDirectory(context.Background(), ".", interfaces.FileExportOptions{})
	if err != nil {
		t.Fatalf("ExportDirectory() error = %v", err)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected one per-file error, got %d", len(report.Errors))
	}
	if report.Written != 1 {
		t.Fatalf("good file should still be written, got %d", report.Written)
	}
}

func newExportService(t *testing.T, cfg Config) *Service {
	t.Helper()

	svc, err := NewService(cfg, nil)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	svc.clock = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func copyFixture(t *testing.T, base, name string) []byte {
	t.Helper()

	state, err := testsupport.LoadState(filepath.Join("testdata", "welcome.json"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	writeState(t, base, name, string(state))
	return state
}

func writeState(t *testing.T, base, name, contents string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(base, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
