package appconfig

import (
	"github.com/noted-input/noted-analyze/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevMode to indicate development mode. When true, logs are emitted at trace level
	// regardless of LogLevel.
	DevMode bool `split_words:"true"`

	// LogLevel is the minimum zerolog level written to stderr and the log file.
	// Defaults to warn so that the console report on stdout stays the only output of a normal run.
	LogLevel string `split_words:"true" default:"warn" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// LogJSON is whether to log JSON lines (instead of pretty-print logs) to stderr for the ease of log collection.
	LogJSON bool `envconfig:"LOG_JSON" default:"false"`

	// LogFile, when set, additionally writes logs to this path, rotated by size.
	LogFile string `split_words:"true"`

	// LogFileMaxSizeMB is the size in megabytes at which LogFile gets rotated.
	LogFileMaxSizeMB int `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"10" validate:"gte=1"`

	// LogFileMaxBackups is the number of rotated log files to keep.
	LogFileMaxBackups int `split_words:"true" default:"3" validate:"gte=0"`

	// ProfilerAddress, when set, serves fgprof at /debug/fgprof on this address for the duration of a run.
	ProfilerAddress string `split_words:"true" validate:"omitempty,hostname_port"`

	// TimelineWidth and TimelineHeight are the pixel dimensions of the rendered timeline.
	TimelineWidth  int `split_words:"true" default:"2100" validate:"gte=320,lte=20000"`
	TimelineHeight int `split_words:"true" default:"600" validate:"gte=160,lte=8000"`

	// TimelineBackground is the canvas color of the rendered timeline.
	TimelineBackground HexColor `split_words:"true" default:"#1A1A2E"`

	// TimelineClickColor is the color of click markers on the rendered timeline.
	TimelineClickColor HexColor `split_words:"true" default:"#FF3366"`

	// DeltaLookupWindow is how far back, in milliseconds, delta recomputation looks for key events before a click.
	DeltaLookupWindow float64 `split_words:"true" default:"200" validate:"gt=0"`

	// MonitoredKeys are the keys whose release counts towards the deadzone delta when recomputing deltas.
	MonitoredKeys []string `split_words:"true" default:"A,D,W,S" validate:"min=1,dive,required"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
