package richtext

import (
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-richtext/internal/commands"
	exportcmd "github.com/goliatone/go-richtext/internal/commands/export"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/logging/gologger"
	"github.com/goliatone/go-richtext/internal/markdown"
	"github.com/goliatone/go-richtext/internal/store"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Exported contracts for consumers of the richtext package.
type (
	Exporter          = interfaces.Exporter
	ExportOptions     = interfaces.ExportOptions
	ExportService     = interfaces.ExportService
	FileExportOptions = interfaces.FileExportOptions
	ExportedFile      = interfaces.ExportedFile
	ExportReport      = interfaces.ExportReport
	FrontMatter       = interfaces.FrontMatter
	Renderer          = interfaces.Renderer
	RenderOptions     = interfaces.RenderOptions
)

// StoreService exports the document store contract.
type StoreService = store.Service

// SaveInput exports the document store save payload.
type SaveInput = store.SaveInput

// Commands bundles the command handlers exposed by the module.
type Commands struct {
	ExportFile      *exportcmd.ExportFileHandler
	ExportDirectory *exportcmd.ExportDirectoryHandler
}

// Module is the top level richtext runtime facade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	export   *markdown.Service
	renderer *markdown.GoldmarkRenderer
	store    *store.Service
}

type moduleOptions struct {
	provider   interfaces.LoggerProvider
	db         *bun.DB
	cache      cache.CacheService
	serializer cache.KeySerializer
}

// Option customises module construction.
type Option func(*moduleOptions)

// WithLoggerProvider overrides the go-logger provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithDB enables the document store backed by the supplied bun database.
func WithDB(db *bun.DB) Option {
	return func(o *moduleOptions) {
		o.db = db
	}
}

// WithStoreCache layers a repository cache over the document store. Requires WithDB.
func WithStoreCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(o *moduleOptions) {
		o.cache = service
		o.serializer = serializer
	}
}

// New constructs a richtext module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &moduleOptions{}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}

	exportService, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Export.BasePath,
		OutputDir: cfg.Export.OutputDir,
		Pattern:   cfg.Export.Pattern,
		Recursive: cfg.Export.Recursive,
		Export:    cfg.Export.ExportOptions(),
	}, logging.ExportLogger(provider))
	if err != nil {
		return nil, err
	}

	module := &Module{
		cfg:      cfg,
		provider: provider,
		export:   exportService,
		renderer: markdown.NewGoldmarkRenderer(cfg.Preview.RenderOptions()),
	}

	if options.db != nil {
		repo := store.NewBunDocumentRepositoryWithCache(options.db, options.cache, options.serializer)
		module.store = store.NewService(repo, exportService, cfg.Export.ExportOptions(), logging.StoreLogger(provider))
	}

	return module, nil
}

// Export returns the configured export service.
func (m *Module) Export() ExportService {
	return m.export
}

// Renderer returns the HTML preview renderer.
func (m *Module) Renderer() Renderer {
	return m.renderer
}

// Store returns the document store, or nil when no database was supplied.
func (m *Module) Store() *StoreService {
	if m == nil {
		return nil
	}
	return m.store
}

// LoggerProvider exposes the provider so hosts can attach their own namespaces.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// Commands builds the command handlers bound to this module's export service.
func (m *Module) Commands() Commands {
	logger := commands.CommandLogger(m.provider, "export")
	return Commands{
		ExportFile:      exportcmd.NewExportFileHandler(m.export, logger),
		ExportDirectory: exportcmd.NewExportDirectoryHandler(m.export, logger),
	}
}
