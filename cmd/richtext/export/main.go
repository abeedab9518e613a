package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-richtext/cmd/richtext/internal/bootstrap"
	exportcmd "github.com/goliatone/go-richtext/internal/commands/export"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runExport(os.Args[1:]); err != nil {
		log.Fatalf("richtext export: %v", err)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("richtext-export", flag.ExitOnError)
	baseDir := fs.String("base-dir", ".", "Path to the editor state document root")
	outputDir := fs.String("output-dir", "dist", "Directory where Markdown files are written")
	pattern := fs.String("pattern", "*.json", "Glob pattern applied when discovering editor state files")
	recursive := fs.Bool("recursive", false, "Descend into subdirectories when exporting a directory")
	force := fs.Bool("force", false, "Rewrite output files even when the source checksum is unchanged")
	validateState := fs.Bool("validate-state", false, "Run JSON schema validation on every editor state before export")
	validateSequence := fs.Bool("validate-sequence", false, "Enforce the pre-order depth discipline before serializing")
	filePath := fs.String("file", "", "Single editor state file to export (relative to the base dir)")
	directory := fs.String("dir", "", "Directory to export, relative to the base dir")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *filePath == "" && *directory == "" {
		return fmt.Errorf("either --file or --dir is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		BasePath:         *baseDir,
		OutputDir:        *outputDir,
		Pattern:          *pattern,
		Recursive:        *recursive,
		ValidateState:    *validateState,
		ValidateSequence: *validateSequence,
		LogLevel:         *logLevel,
		LogFormat:        *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()

	if *filePath != "" {
		handler := exportcmd.NewExportFileHandler(module.Service, module.Logger)
		cmd := exportcmd.ExportFileCommand{
			SourcePath:    *filePath,
			Force:         *force,
			ValidateState: *validateState,
		}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute export command: %w", err)
		}
		fmt.Fprintln(os.Stdout, "export command executed successfully")
		return nil
	}

	handler := exportcmd.NewExportDirectoryHandler(module.Service, module.Logger)
	cmd := exportcmd.ExportDirectoryCommand{
		Directory:     *directory,
		Pattern:       *pattern,
		Recursive:     recursive,
		Force:         *force,
		ValidateState: *validateState,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute export command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "export command executed successfully")

	return nil
}
