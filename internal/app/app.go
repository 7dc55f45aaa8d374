package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/app/appcontext"
	"github.com/noted-input/noted-analyze/internal/loader"
	"github.com/noted-input/noted-analyze/internal/pkg/logger"
	"github.com/noted-input/noted-analyze/internal/service"
	"github.com/noted-input/noted-analyze/internal/timeline"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		return []fx.Option{fx.Error(err)}
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Input
		fx.Provide(loader.New),

		// Services
		service.Module(),

		// Output
		fx.Provide(timeline.NewRenderer),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
