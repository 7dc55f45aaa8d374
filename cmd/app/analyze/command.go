package analyze

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/loader"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
	"github.com/noted-input/noted-analyze/internal/service"
	"github.com/noted-input/noted-analyze/internal/timeline"
)

const (
	FlagPNG       = "png"
	FlagStatsOnly = "stats-only"
)

type CommandDeps struct {
	fx.In

	Config     *appconfig.Config
	Loader     *loader.Loader
	Statistics *service.Statistics
	Reporter   *service.Reporter
	Renderer   timeline.Renderer
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      FlagPNG,
			Usage:     "write the timeline to `PATH` instead of <log>_timeline.png",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  FlagStatsOnly,
			Usage: "only print statistics, skip the timeline",
		},
	}
}

// Action is the root action of the application: report and render one session log.
func Action(depsFn func() (CommandDeps, error)) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		path := ctx.Args().First()
		if path == "" {
			_ = cli.ShowAppHelp(ctx)
			return nderr.ErrInvalidArgument.Msg("missing session log path")
		}
		if ctx.NArg() > 1 {
			return nderr.ErrInvalidArgument.Msg("unexpected arguments after %s: %v (flags go before the log path)", path, ctx.Args().Tail())
		}

		deps, err := depsFn()
		if err != nil {
			return err
		}

		return run(ctx, deps, options{
			path:      path,
			png:       ctx.String(FlagPNG),
			statsOnly: ctx.Bool(FlagStatsOnly),
		})
	}
}
