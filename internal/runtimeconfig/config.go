package runtimeconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var ErrExportBasePathRequired = errors.New("richtext config: export base path is required")
var ErrExportPatternInvalid = errors.New("richtext config: export pattern is not a valid glob")
var ErrLoggingLevelInvalid = errors.New("richtext config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("richtext config: logging format is invalid")

// Config aggregates the runtime bindings for the richtext module. Fields
// intentionally use simple types so host applications can extend them later.
type Config struct {
	Export  ExportConfig
	Preview PreviewConfig
	Logging LoggingConfig
}

// ExportConfig controls filesystem discovery and payload validation defaults
// for the export service.
type ExportConfig struct {
	// BasePath is the root directory where editor-state documents live.
	BasePath string
	// OutputDir is where exported Markdown files are written. Leave empty for
	// serialize-only operation.
	OutputDir string
	// Pattern limits discovered files to those matching the supplied glob.
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// ValidateState runs JSON schema validation on every payload before decoding.
	ValidateState bool
	// ValidateSequence enforces the pre-order depth discipline before serializing.
	ValidateSequence bool
}

// PreviewConfig customises the HTML preview renderer.
type PreviewConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig configures the go-logger provider used by the module.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration used by the module facade.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			BasePath: ".",
			Pattern:  "*.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks cross-field constraints before the module boots.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Export.BasePath) == "" {
		return ErrExportBasePathRequired
	}
	if pattern := strings.TrimSpace(cfg.Export.Pattern); pattern != "" {
		if _, err := filepath.Match(pattern, "probe.json"); err != nil {
			return fmt.Errorf("%w: %s", ErrExportPatternInvalid, pattern)
		}
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

// ExportOptions converts the configured validation toggles into the payload
// options handed to the exporter.
func (cfg ExportConfig) ExportOptions() interfaces.ExportOptions {
	return interfaces.ExportOptions{
		ValidateState:    cfg.ValidateState,
		ValidateSequence: cfg.ValidateSequence,
	}
}

// RenderOptions converts the preview settings into renderer options.
func (cfg PreviewConfig) RenderOptions() interfaces.RenderOptions {
	return interfaces.RenderOptions{
		Extensions: cfg.Extensions,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "json", "console", "pretty":
		return true
	}
	return false
}
