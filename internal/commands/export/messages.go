package exportcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	exportFileMessageType      = "richtext.export.file"
	exportDirectoryMessageType = "richtext.export.directory"
)

// ExportFileCommand converts a single editor state file to Markdown on disk.
// The command mirrors markdown.Service ExportFile semantics, so options map
// directly onto interfaces.FileExportOptions.
type ExportFileCommand struct {
	// SourcePath selects the editor state JSON file (relative to the service base path).
	SourcePath string `json:"source_path"`
	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string `json:"output_dir,omitempty"`
	// Force rewrites the Markdown file even when the stored checksum is unchanged.
	Force bool `json:"force,omitempty"`
	// ValidateState runs JSON schema validation on the editor state before export.
	ValidateState bool `json:"validate_state,omitempty"`
}

// Type implements command.Message.
func (ExportFileCommand) Type() string { return exportFileMessageType }

// Validate ensures a source path is present before handlers execute.
func (cmd ExportFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourcePath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("richtext.export.file.source_required", "source path is required")
			}
			return nil
		})),
	)
}

// ExportDirectoryCommand walks a directory of editor state files and exports
// each match to Markdown, applying pattern and recursion flags consistent with
// interfaces.FileExportOptions.
type ExportDirectoryCommand struct {
	// Directory selects the filesystem path (relative to the service base path) to walk.
	Directory string `json:"directory"`
	// Pattern filters files by glob match; empty keeps the service default.
	Pattern string `json:"pattern,omitempty"`
	// Recursive descends into subdirectories when set.
	Recursive *bool `json:"recursive,omitempty"`
	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string `json:"output_dir,omitempty"`
	// Force rewrites Markdown files even when stored checksums are unchanged.
	Force bool `json:"force,omitempty"`
	// ValidateState runs JSON schema validation on each editor state before export.
	ValidateState bool `json:"validate_state,omitempty"`
}

// Type implements command.Message.
func (ExportDirectoryCommand) Type() string { return exportDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ExportDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("richtext.export.directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
