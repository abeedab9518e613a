package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-richtext/cmd/richtext/internal/bootstrap"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		baseDir       = flag.String("base-dir", ".", "Path to the editor state document root")
		filePath      = flag.String("file", "", "Editor state file to preview (relative to the base dir)")
		validateState = flag.Bool("validate-state", false, "Run JSON schema validation before rendering")
		extensions    = flag.String("extensions", "", "Comma separated goldmark extensions (defaults to gfm,linkify)")
		hardWraps     = flag.Bool("hard-wraps", false, "Render single newlines as hard line breaks")
		safeMode      = flag.Bool("safe-mode", false, "Suppress raw HTML in rendered output")
		renderHTML    = flag.Bool("render-html", true, "Render the exported Markdown into HTML as part of the preview")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		BasePath:      *baseDir,
		ValidateState: *validateState,
		Extensions:    bootstrap.SplitList(*extensions),
		HardWraps:     *hardWraps,
		SafeMode:      *safeMode,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	file, err := module.Service.ExportFile(ctx, *filePath, interfaces.FileExportOptions{
		Export: interfaces.ExportOptions{ValidateState: *validateState},
	})
	if err != nil {
		log.Fatalf("export editor state: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Source: %s\nTitle: %s\nSlug: %s\nChecksum: %x\n\n", file.SourcePath, file.Title, file.Slug, file.Checksum)

	if !*renderHTML {
		fmt.Fprintf(os.Stdout, "Markdown:\n%s\n", file.Markdown)
		return
	}

	html, err := module.Module.Renderer().Render([]byte(file.Markdown))
	if err != nil {
		log.Fatalf("render markdown: %v", err)
	}
	fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(html))
}
