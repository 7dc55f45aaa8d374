//go:build !notimeline

package timeline

import (
	"context"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/noted-input/noted-analyze/internal/app/appconfig"
	"github.com/noted-input/noted-analyze/internal/model"
	"github.com/noted-input/noted-analyze/internal/pkg/nderr"
)

func testConfig() *appconfig.Config {
	conf := &appconfig.Config{}
	conf.TimelineWidth = 800
	conf.TimelineHeight = 240
	_ = conf.TimelineBackground.Decode("#1A1A2E")
	_ = conf.TimelineClickColor.Decode("#FF3366")
	return conf
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session_timeline.png")

	err := NewRenderer(testConfig()).Render(context.Background(), []*model.Event{
		key(0, "A", model.EventTypeDown),
		key(150, "A", model.EventTypeUp),
		key(160, "D", model.EventTypeDown),
		click(175, null.FloatFrom(25)),
		key(400, "D", model.EventTypeUp),
	}, path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
}

func TestRenderSingleInstant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instant.png")

	err := NewRenderer(testConfig()).Render(context.Background(), []*model.Event{
		click(42, null.FloatFrom(3)),
	}, path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRenderNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")

	err := NewRenderer(testConfig()).Render(context.Background(), nil, path)
	assert.ErrorIs(t, err, nderr.ErrNothingToRender)
	assert.NoFileExists(t, path)
}

func TestRenderCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canceled.png")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRenderer(testConfig()).Render(ctx, []*model.Event{click(0, null.Float{})}, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestRasterizeNonFiniteDuration(t *testing.T) {
	style := StyleFrom(testConfig())

	for _, d := range []float64{math.Inf(1), math.NaN()} {
		plan := &Plan{Duration: d, Rects: []Rect{}, Clicks: []Click{{At: 0}, {At: d}}}

		done := make(chan struct{})
		go func() {
			defer close(done)
			img := rasterize(plan, style)
			assert.Equal(t, style.Width, img.Bounds().Dx())
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("rasterize did not return for duration %v", d)
		}
	}
}

func TestTickStep(t *testing.T) {
	assert.InDelta(t, 0.02, tickStep(0.15, 10), 1e-12)
	assert.InDelta(t, 0.1, tickStep(1, 10), 1e-12)
	assert.InDelta(t, 5, tickStep(42, 10), 1e-12)
	assert.InDelta(t, 10, tickStep(95, 10), 1e-12)

	for _, span := range []float64{math.Inf(1), math.NaN(), 0, -3} {
		assert.InDelta(t, 0.1, tickStep(span, 10), 1e-12, "span %v", span)
	}

	assert.Equal(t, 2, tickDecimals(0.02))
	assert.Equal(t, 1, tickDecimals(0.5))
	assert.Equal(t, 0, tickDecimals(5))
}
