package analyze

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/flog"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
	"github.com/noted-input/noted-analyze/internal/pkg/profiler"
	"github.com/noted-input/noted-analyze/internal/timeline"
)

type options struct {
	path      string
	png       string
	statsOnly bool
}

func run(c *cli.Context, deps CommandDeps, opts options) error {
	stop := profiler.Serve(deps.Config.ProfilerAddress)
	defer stop()

	ctx := flog.NewRunContext(c.Context, "runId")
	w := c.App.Writer

	flog.InfoFrom(ctx).Str("path", opts.path).Msg("analyzing session log")

	events, err := deps.Loader.Load(ctx, opts.path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Loaded %d events from %s\n", len(events), opts.path)

	if err := deps.Reporter.Print(w, deps.Statistics.Reduce(events)); err != nil {
		return err
	}

	if opts.statsOnly {
		return nil
	}

	out := opts.png
	if out == "" {
		out = timeline.DefaultOutputPath(opts.path)
	}

	return RenderTimeline(ctx, w, deps.Renderer, events, out)
}

// RenderTimeline renders events to out and reports the outcome on w. An
// unavailable renderer and an empty session are reported without failing.
func RenderTimeline(ctx context.Context, w io.Writer, r timeline.Renderer, events []*model.Event, out string) error {
	err := r.Render(ctx, events, out)
	if ne, ok := nderr.As(err); ok && ne.Recoverable() {
		flog.WarnFrom(ctx).Str("code", ne.ErrorCode).Msg("timeline skipped")
		fmt.Fprintln(w, ne.Message)
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to render timeline")
	}

	fmt.Fprintf(w, "Timeline saved to: %s\n", out)
	return nil
}
