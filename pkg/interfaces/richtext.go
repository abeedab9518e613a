package interfaces

import (
	"context"
	"time"
)

// Exporter converts a rich-text editor state payload into Markdown text.
// Implementations must be deterministic: two calls with the same payload
// produce byte-identical output.
type Exporter interface {
	// Export decodes the editor state and serializes it to Markdown using the
	// exporter's default settings.
	Export(ctx context.Context, state []byte, opts ExportOptions) (string, error)
}

// ExportOptions customises how an editor state payload is converted.
type ExportOptions struct {
	// ValidateState runs the editor-state JSON schema before decoding.
	ValidateState bool
	// ValidateSequence enforces the pre-order depth discipline on the
	// flattened node sequence before serializing. When false the exporter is
	// permissive and produces best-effort output for malformed trees.
	ValidateSequence bool
}

// ExportService exposes the file-centric export workflows: single payloads,
// single files, and directory walks that mirror the source layout into an
// output directory of Markdown documents.
type ExportService interface {
	Exporter
	ExportFile(ctx context.Context, path string, opts FileExportOptions) (*ExportedFile, error)
	ExportDirectory(ctx context.Context, dir string, opts FileExportOptions) (*ExportReport, error)
}

// FileExportOptions fine-tunes how editor-state files are discovered and
// where their Markdown output is written.
type FileExportOptions struct {
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to the service configuration, typically "*.json").
	Pattern string
	// Recursive overrides the service-level directory traversal setting.
	Recursive *bool
	// OutputDir overrides the configured output directory.
	OutputDir string
	// Force rewrites output files even when the recorded source checksum
	// matches the current editor state.
	Force bool
	// Export carries payload-level validation toggles.
	Export ExportOptions
}

// ExportedFile reports the outcome for a single editor-state file.
type ExportedFile struct {
	SourcePath string
	OutputPath string
	Title      string
	Slug       string
	// Checksum is the SHA-256 digest of the source editor state, recorded in
	// the output frontmatter so repeated runs can skip unchanged documents.
	Checksum []byte
	Markdown string
	Skipped  bool
}

// ExportReport summarises a directory export run.
type ExportReport struct {
	Files   []*ExportedFile
	Written int
	Skipped int
	Errors  []error
}

// FrontMatter models the metadata stamped onto exported Markdown files.
type FrontMatter struct {
	Title    string    `yaml:"title" json:"title"`
	Slug     string    `yaml:"slug" json:"slug"`
	Checksum string    `yaml:"checksum" json:"checksum"`
	Exported time.Time `yaml:"exported" json:"exported"`
}

// Renderer converts Markdown text into HTML for previews of exported output.
type Renderer interface {
	// Render converts Markdown into HTML using the renderer's default settings.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises preview rendering, keeping option names readable
// for configuration unmarshalling and CLI flags.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}
