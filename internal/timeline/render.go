package timeline

import (
	"context"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
)

const outputSuffix = "_timeline.png"

var compressionExts = []string{".gz", ".bz2", ".xz"}

// Renderer draws a session timeline to an image file.
type Renderer interface {
	Render(ctx context.Context, events []*model.Event, path string) error
}

// Style holds the fixed cosmetic constants of a rendered timeline.
type Style struct {
	Width      int
	Height     int
	Background color.NRGBA
	Click      color.NRGBA
}

func StyleFrom(conf *appconfig.Config) Style {
	return Style{
		Width:      conf.TimelineWidth,
		Height:     conf.TimelineHeight,
		Background: conf.TimelineBackground.NRGBA(),
		Click:      conf.TimelineClickColor.NRGBA(),
	}
}

// backend rasterizes a plan. It is nil in builds without timeline support.
type backend interface {
	draw(ctx context.Context, plan *Plan, style Style, path string) error
}

type Timeline struct {
	style   Style
	backend backend
	logger  zerolog.Logger
}

var _ Renderer = (*Timeline)(nil)

func NewRenderer(conf *appconfig.Config) Renderer {
	return &Timeline{
		style:   StyleFrom(conf),
		backend: newBackend(),
		logger:  log.With().Str("module", "timeline").Logger(),
	}
}

// Render writes the timeline of events to path. It reports
// nderr.ErrRendererUnavailable when this build has no raster backend and
// nderr.ErrNothingToRender for an empty session; neither writes a file.
func (t *Timeline) Render(ctx context.Context, events []*model.Event, path string) error {
	if t.backend == nil {
		return nderr.ErrRendererUnavailable
	}
	if len(events) == 0 {
		return nderr.ErrNothingToRender
	}

	plan := Layout(events)

	t.logger.Debug().
		Str("path", path).
		Float64("durationSeconds", plan.Duration).
		Int("rects", len(plan.Rects)).
		Int("clicks", len(plan.Clicks)).
		Msg("rendering timeline")

	return t.backend.draw(ctx, plan, t.style, path)
}

// DefaultOutputPath derives the image path for a log: its extension (and a
// compression extension in front of it) is replaced by "_timeline.png".
func DefaultOutputPath(logPath string) string {
	base := logPath
	for _, ext := range compressionExts {
		if strings.EqualFold(filepath.Ext(base), ext) {
			base = strings.TrimSuffix(base, filepath.Ext(base))
			break
		}
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + outputSuffix
}
