package markdown

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-richtext/internal/document"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Config controls how the export service discovers editor-state files and
// where their Markdown output lands.
type Config struct {
	// BasePath is the root directory where editor-state documents live.
	BasePath string
	// OutputDir is where exported Markdown files are written.
	OutputDir string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.json").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Export carries the default payload validation toggles.
	Export interfaces.ExportOptions
}

// Service implements interfaces.ExportService for filesystem-backed
// editor-state documents.
type Service struct {
	cfg      Config
	fs       fs.FS
	exporter *Exporter
	clock    func() time.Time
	logger   interfaces.Logger
}

var _ interfaces.ExportService = (*Service)(nil)

// NewService constructs an export service rooted at the configured base path.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "*.json"
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		cfg:      cfg,
		fs:       filesystem,
		exporter: NewExporter(),
		clock:    time.Now,
		logger:   logger,
	}, nil
}

// Export decodes an editor-state payload and serializes it to Markdown.
func (s *Service) Export(ctx context.Context, state []byte, opts interfaces.ExportOptions) (string, error) {
	markdown, _, err := s.exportState(ctx, state, opts)
	return markdown, err
}

func (s *Service) exportState(ctx context.Context, state []byte, opts interfaces.ExportOptions) (string, *document.Tree, error) {
	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	if opts.ValidateState {
		if err := document.ValidateState(state); err != nil {
			return "", nil, err
		}
	}

	tree, err := document.Decode(state)
	if err != nil {
		return "", nil, err
	}

	entries := tree.Flatten()
	if opts.ValidateSequence {
		if err := document.ValidateSequence(entries); err != nil {
			return "", nil, err
		}
	}

	return s.exporter.Serialize(entries), tree, nil
}

// ExportFile exports a single editor-state file and writes the Markdown
// output unless the recorded checksum shows the source is unchanged.
func (s *Service) ExportFile(ctx context.Context, path string, opts interfaces.FileExportOptions) (*interfaces.ExportedFile, error) {
	rel, err := s.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	state, err := fs.ReadFile(s.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("export read %s: %w", rel, err)
	}

	markdown, tree, err := s.exportState(ctx, state, s.mergeExportOptions(opts.Export))
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", rel, err)
	}

	title := tree.Title()
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	}
	docSlug := slugify(title)

	sum := sha256.Sum256(state)
	result := &interfaces.ExportedFile{
		SourcePath: rel,
		Title:      title,
		Slug:       docSlug,
		Checksum:   sum[:],
		Markdown:   markdown,
	}

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		outputDir = s.cfg.OutputDir
	}
	if outputDir == "" {
		// No output directory configured: serialize only.
		return result, nil
	}

	result.OutputPath = filepath.Join(outputDir, docSlug+".md")

	if !opts.Force && s.unchanged(result.OutputPath, sum[:]) {
		result.Skipped = true
		logging.WithExportContext(s.logger, rel, result.OutputPath, docSlug).
			Debug("export.file.skipped")
		return result, nil
	}

	encoded, err := encodeExported(buildFrontMatter(title, docSlug, sum[:], s.clock()), markdown)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", rel, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("export create output dir %s: %w", outputDir, err)
	}
	if err := os.WriteFile(result.OutputPath, encoded, 0o644); err != nil {
		return nil, fmt.Errorf("export write %s: %w", result.OutputPath, err)
	}

	logging.WithExportContext(s.logger, rel, result.OutputPath, docSlug).
		Info("export.file.written")
	return result, nil
}

// ExportDirectory discovers editor-state files under dir and exports each
// one. Per-file failures are collected in the report rather than aborting
// the walk.
func (s *Service) ExportDirectory(ctx context.Context, dir string, opts interfaces.FileExportOptions) (*interfaces.ExportReport, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root, err := s.makeRelative(dir)
	if err != nil {
		return nil, err
	}
	root = filepath.Clean(root)

	var paths []string
	walkErr := fs.WalkDir(s.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !s.shouldRecurse(root, path, opts.Recursive) {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		rel := filepath.ToSlash(path)
		if !s.matchesPattern(rel, opts.Pattern) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Strings(paths)

	report := &interfaces.ExportReport{}
	for _, path := range paths {
		file, err := s.ExportFile(ctx, path, opts)
		if err != nil {
			report.Errors = append(report.Errors, err)
			continue
		}
		report.Files = append(report.Files, file)
		if file.Skipped {
			report.Skipped++
		} else if file.OutputPath != "" {
			report.Written++
		}
	}
	return report, nil
}

func (s *Service) mergeExportOptions(override interfaces.ExportOptions) interfaces.ExportOptions {
	merged := s.cfg.Export
	if override.ValidateState {
		merged.ValidateState = true
	}
	if override.ValidateSequence {
		merged.ValidateSequence = true
	}
	return merged
}

// unchanged reports whether the existing output file records the same source
// checksum. Any read or parse failure counts as changed.
func (s *Service) unchanged(outputPath string, checksum []byte) bool {
	existing, err := os.ReadFile(outputPath)
	if err != nil {
		return false
	}
	meta, _, err := ParseExported(existing)
	if err != nil {
		return false
	}
	return meta.Checksum == hex.EncodeToString(checksum)
}

func (s *Service) shouldRecurse(root, current string, override *bool) bool {
	recursive := s.cfg.Recursive
	if override != nil {
		recursive = *override
	}
	if recursive {
		return true
	}
	// If recursion is disabled, only walk the root directory.
	return filepath.Clean(root) == filepath.Clean(current)
}

func (s *Service) matchesPattern(path string, override string) bool {
	pattern := override
	if strings.TrimSpace(pattern) == "" {
		pattern = s.cfg.Pattern
	}
	pattern = filepath.ToSlash(pattern)
	var target string
	if strings.Contains(pattern, "/") {
		target = path
	} else {
		target = filepath.Base(path)
	}
	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func (s *Service) makeRelative(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	base := filepath.Clean(s.cfg.BasePath)
	if base == "" || base == "." {
		return "", fmt.Errorf("export: absolute path %s provided without base path", path)
	}
	rel, err := filepath.Rel(base, clean)
	if err != nil {
		return "", fmt.Errorf("export: make relative %s: %w", path, err)
	}
	return rel, nil
}

func slugify(input string) string {
	candidate := strings.TrimSpace(input)
	if candidate == "" {
		return "untitled"
	}
	normalizer := slug.Default()
	normalized, err := normalizer.Normalize(candidate)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.ReplaceAll(candidate, " ", "-"))
	}
	return normalized
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("export: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
