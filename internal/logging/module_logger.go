package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const (
	rootModule   = "richtext"
	exportModule = "richtext.export"
	storeModule  = "richtext.store"
)

const (
	fieldExportSource = "source_path"
	fieldExportOutput = "output_path"
	fieldExportSlug   = "slug"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ExportLogger returns the logger namespace reserved for export workflows.
func ExportLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exportModule)
}

// StoreLogger returns the logger namespace reserved for document persistence.
func StoreLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storeModule)
}

// WithExportContext enriches the provided logger with common export fields
// such as source path, output path, and slug. Empty values are ignored.
func WithExportContext(logger interfaces.Logger, source, output, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldExportSource] = trimmed
	}
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		fields[fieldExportOutput] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldExportSlug] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
