package richtext

import "github.com/goliatone/go-richtext/internal/runtimeconfig"

var (
	ErrExportBasePathRequired = runtimeconfig.ErrExportBasePathRequired
	ErrExportPatternInvalid   = runtimeconfig.ErrExportPatternInvalid
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ExportConfig  = runtimeconfig.ExportConfig
	PreviewConfig = runtimeconfig.PreviewConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
