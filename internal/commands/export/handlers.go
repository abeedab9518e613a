package exportcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-richtext/internal/commands"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

const (
	exportFileOperation      = "export.file"
	exportDirectoryOperation = "export.directory"
)

var (
	_ command.Commander[ExportFileCommand]      = (*ExportFileHandler)(nil)
	_ command.Commander[ExportDirectoryCommand] = (*ExportDirectoryHandler)(nil)
)

// ExportFileHandler exports a single editor state file via the shared command handler foundation.
type ExportFileHandler struct {
	inner *commands.Handler[ExportFileCommand]
}

// NewExportFileHandler creates a handler bound to the supplied export service.
func NewExportFileHandler(service interfaces.ExportService, logger interfaces.Logger, opts ...commands.HandlerOption[ExportFileCommand]) *ExportFileHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportFileCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		file, err := service.ExportFile(ctx, msg.SourcePath, fileOptions(msg))
		if err != nil {
			return err
		}
		if file != nil {
			logging.WithFields(baseLogger, map[string]any{
				"source":  file.SourcePath,
				"output":  file.OutputPath,
				"slug":    file.Slug,
				"skipped": file.Skipped,
			}).Info("export.command.file.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportFileCommand]{
		commands.WithLogger[ExportFileCommand](baseLogger),
		commands.WithOperation[ExportFileCommand](exportFileOperation),
		commands.WithMessageFields(func(msg ExportFileCommand) map[string]any {
			fields := map[string]any{
				"source": msg.SourcePath,
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.ValidateState {
				fields["validate_state"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportFileCommand].
func (h *ExportFileHandler) Execute(ctx context.Context, msg ExportFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportDirectoryHandler exports a directory of editor state files via the shared command handler foundation.
type ExportDirectoryHandler struct {
	inner *commands.Handler[ExportDirectoryCommand]
}

// NewExportDirectoryHandler creates a handler bound to the supplied export service.
func NewExportDirectoryHandler(service interfaces.ExportService, logger interfaces.Logger, opts ...commands.HandlerOption[ExportDirectoryCommand]) *ExportDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportDirectoryCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report, err := service.ExportDirectory(ctx, msg.Directory, directoryOptions(msg))
		if err != nil {
			return err
		}
		if report != nil {
			logging.WithFields(baseLogger, map[string]any{
				"file_count":  len(report.Files),
				"written":     report.Written,
				"skipped":     report.Skipped,
				"error_count": len(report.Errors),
			}).Info("export.command.directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportDirectoryCommand]{
		commands.WithLogger[ExportDirectoryCommand](baseLogger),
		commands.WithOperation[ExportDirectoryCommand](exportDirectoryOperation),
		commands.WithMessageFields(func(msg ExportDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive != nil {
				fields["recursive"] = *msg.Recursive
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.ValidateState {
				fields["validate_state"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportDirectoryCommand].
func (h *ExportDirectoryHandler) Execute(ctx context.Context, msg ExportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

func fileOptions(msg ExportFileCommand) interfaces.FileExportOptions {
	return interfaces.FileExportOptions{
		OutputDir: msg.OutputDir,
		Force:     msg.Force,
		Export: interfaces.ExportOptions{
			ValidateState: msg.ValidateState,
		},
	}
}

func directoryOptions(msg ExportDirectoryCommand) interfaces.FileExportOptions {
	opts := interfaces.FileExportOptions{
		Pattern:   msg.Pattern,
		OutputDir: msg.OutputDir,
		Force:     msg.Force,
		Export: interfaces.ExportOptions{
			ValidateState: msg.ValidateState,
		},
	}
	if msg.Recursive != nil {
		recursive := *msg.Recursive
		opts.Recursive = &recursive
	}
	return opts
}
