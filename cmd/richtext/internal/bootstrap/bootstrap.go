package bootstrap

import (
	"fmt"
	"strings"

	richtext "github.com/goliatone/go-richtext"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// Options captures configuration for richtext CLI bootstraps.
type Options struct {
	BasePath         string
	OutputDir        string
	Pattern          string
	Recursive        bool
	ValidateState    bool
	ValidateSequence bool
	Extensions       []string
	HardWraps        bool
	SafeMode         bool
	LogLevel         string
	LogFormat        string
	LoggerProvider   interfaces.LoggerProvider
}

// Module wraps the richtext module and the configured export service/logger.
type Module struct {
	Module  *richtext.Module
	Service richtext.ExportService
	Logger  interfaces.Logger
}

// BuildModule constructs a richtext module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := richtext.DefaultConfig()
	cfg.Export.BasePath = strings.TrimSpace(opts.BasePath)
	if cfg.Export.BasePath == "" {
		cfg.Export.BasePath = "."
	}
	cfg.Export.OutputDir = strings.TrimSpace(opts.OutputDir)
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Export.Pattern = trimmed
	}
	cfg.Export.Recursive = opts.Recursive
	cfg.Export.ValidateState = opts.ValidateState
	cfg.Export.ValidateSequence = opts.ValidateSequence

	cfg.Preview.Extensions = opts.Extensions
	cfg.Preview.HardWraps = opts.HardWraps
	cfg.Preview.SafeMode = opts.SafeMode

	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	moduleOpts := []richtext.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, richtext.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := richtext.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise richtext module: %w", err)
	}

	return &Module{
		Module:  module,
		Service: module.Export(),
		Logger:  logging.ExportLogger(module.LoggerProvider()),
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
