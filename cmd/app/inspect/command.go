package inspect

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/loader"
	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/flog"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
	"github.com/noted-input/noted-analyze/internal/pkg/profiler"
	"github.com/noted-input/noted-analyze/internal/service"
)

const (
	FlagRecompute = "recompute"
	FlagWindow    = "window"
	FlagKeys      = "keys"
	FlagJSON      = "json"
	FlagClicks    = "clicks"
)

type CommandDeps struct {
	fx.In

	Config       *appconfig.Config
	Loader       *loader.Loader
	Statistics   *service.Statistics
	Reporter     *service.Reporter
	Distribution *service.Distribution
	Delta        *service.DeltaCalculator
}

func Command(depsFn func() (CommandDeps, error)) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print delta percentiles and key hold durations of a session log",
		ArgsUsage: "<log>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  FlagRecompute,
				Usage: "derive deltas from the keyboard events instead of trusting the logged ones",
			},
			&cli.Float64Flag{
				Name:  FlagWindow,
				Usage: "lookback `MS` for --recompute (default: NOTED_DELTA_LOOKUP_WINDOW)",
			},
			&cli.StringSliceFlag{
				Name:  FlagKeys,
				Usage: "monitored `KEYS` for --recompute (default: NOTED_MONITORED_KEYS)",
			},
			&cli.BoolFlag{
				Name:  FlagClicks,
				Usage: "list every click with its deadzone and counterstrafe deltas",
			},
			&cli.BoolFlag{
				Name:  FlagJSON,
				Usage: "print the report as JSON",
			},
		},
		Action: func(ctx *cli.Context) error {
			path := ctx.Args().First()
			if path == "" {
				_ = cli.ShowSubcommandHelp(ctx)
				return nderr.ErrInvalidArgument.Msg("missing session log path")
			}
			if ctx.IsSet(FlagWindow) && ctx.Float64(FlagWindow) <= 0 {
				return nderr.ErrInvalidArgument.Msg("--%s must be positive", FlagWindow)
			}

			deps, err := depsFn()
			if err != nil {
				return err
			}
			return run(ctx, deps, path)
		},
	}
}

func run(c *cli.Context, deps CommandDeps, path string) error {
	stop := profiler.Serve(deps.Config.ProfilerAddress)
	defer stop()

	ctx := flog.NewRunContext(c.Context, "runId")
	w := c.App.Writer

	events, err := deps.Loader.Load(ctx, path)
	if err != nil {
		return err
	}

	recompute := c.Bool(FlagRecompute)
	if recompute {
		calc := *deps.Delta
		if c.IsSet(FlagWindow) {
			calc.WindowMs = c.Float64(FlagWindow)
		}
		if c.IsSet(FlagKeys) {
			calc.MonitoredKeys = c.StringSlice(FlagKeys)
		}

		flog.DebugFrom(ctx).
			Float64("windowMs", calc.WindowMs).
			Strs("keys", calc.MonitoredKeys).
			Msg("recomputing deltas")

		events = calc.Recompute(events)
	}

	stats := deps.Statistics.Reduce(events)
	deadzone, counter := deps.Distribution.Deltas(events)
	holds := deps.Distribution.Holds(events)

	if c.Bool(FlagJSON) {
		return deps.Reporter.PrintJSON(w, &model.SessionReport{
			Events:        len(events),
			Recomputed:    recompute,
			Statistics:    stats,
			Deadzone:      deadzone,
			Counterstrafe: counter,
			Holds:         holds,
		})
	}

	fmt.Fprintf(w, "Loaded %d events from %s\n", len(events), path)
	if err := deps.Reporter.Print(w, stats); err != nil {
		return err
	}
	if err := deps.Reporter.PrintDistributions(w, deadzone, counter); err != nil {
		return err
	}
	if err := deps.Reporter.PrintHolds(w, holds); err != nil {
		return err
	}
	if c.Bool(FlagClicks) {
		return deps.Reporter.PrintClicks(w, events)
	}
	return nil
}
