package logger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

// Fx routes fx lifecycle events to the global logger. Successful steps are
// traced, failures are logged as errors.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Supplied:
		f.result(e.Err).Str("type", e.TypeName).Msg("supplied")
	case *fxevent.Provided:
		f.result(e.Err).
			Str("constructor", e.ConstructorName).
			Strs("types", e.OutputTypeNames).
			Str("module", e.ModuleName).
			Msg("provided")
	case *fxevent.Invoked:
		f.result(e.Err).Str("function", e.FunctionName).Msg("invoked")
	case *fxevent.Started:
		f.result(e.Err).Msg("started")
	case *fxevent.Stopped:
		f.result(e.Err).Msg("stopped")
	case *fxevent.RolledBack:
		f.result(e.Err).Msg("rolled back")
	case *fxevent.LoggerInitialized:
		f.result(e.Err).Str("constructor", e.ConstructorName).Msg("logger initialized")
	}
}

func (f *fxLogger) result(err error) *zerolog.Event {
	if err != nil {
		return f.l.Error().Err(err)
	}
	return f.l.Trace()
}
