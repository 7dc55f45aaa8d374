//go:build !notimeline

package timeline

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	marginLeft   = 60
	marginRight  = 30
	marginTop    = 20
	marginBottom = 60

	clickLineWidth = 2
	clickDotRadius = 6
	tickLength     = 5
	labelPadding   = 3
	targetTicks    = 10
	maxTicks       = 4 * targetTicks

	axisTitle = "Time (seconds)"
)

var (
	holdAlpha  uint8 = 204 // 0.8
	clickAlpha uint8 = 179 // 0.7

	axisColor       = color.NRGBA{R: 0x2a, G: 0x2a, B: 0x4a, A: 0xff}
	textColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	labelBoxColor   = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x3f, A: 230}
	fallbackHoldCol = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

type pngBackend struct{}

func newBackend() backend {
	return pngBackend{}
}

func (pngBackend) draw(ctx context.Context, plan *Plan, style Style, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	img := rasterize(plan, style)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create timeline image")
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		_ = os.Remove(path)
		return errors.Wrap(err, "failed to encode timeline image")
	}

	return errors.Wrap(f.Close(), "failed to write timeline image")
}

// frame maps axis coordinates (seconds, [0, 1]) to pixels.
type frame struct {
	plot image.Rectangle
	span float64
}

func newFrame(plan *Plan, style Style) frame {
	span := plan.Duration
	if !finite(span) || span <= 0 {
		// single-instant sessions still get a readable one second axis
		span = 1
	}
	return frame{
		plot: image.Rect(marginLeft, marginTop, style.Width-marginRight, style.Height-marginBottom),
		span: span,
	}
}

func (f frame) x(seconds float64) int {
	if !finite(seconds) {
		seconds = f.span
	}
	return f.plot.Min.X + int(math.Round(seconds/f.span*float64(f.plot.Dx())))
}

func (f frame) y(v float64) int {
	return f.plot.Min.Y + int(math.Round((1-v)*float64(f.plot.Dy())))
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func rasterize(plan *Plan, style Style) *image.RGBA {
	c := newCanvas(style.Width, style.Height, style.Background)
	f := newFrame(plan, style)

	for _, r := range plan.Rects {
		col := fallbackHoldCol
		if track, ok := trackFor(r.Key); ok {
			col = track.Color
		}
		c.fill(image.Rect(f.x(r.Start), f.y(r.Top()), f.x(r.End), f.y(r.Bottom())), withAlpha(col, holdAlpha))
	}

	clickCol := withAlpha(style.Click, clickAlpha)
	for _, click := range plan.Clicks {
		x := f.x(click.At)
		c.vline(x, f.plot.Min.Y, f.plot.Max.Y, clickLineWidth, clickCol)
		c.disc(x, f.y(ClickLane), clickDotRadius, style.Click)
	}

	// labels go last so that markers never cover them
	for _, click := range plan.Clicks {
		if !click.HasLabel {
			continue
		}
		x, y := f.x(click.At), f.y(LabelLane)-labelPadding
		box := textBounds(click.Label, x, y, anchorCenterBottom).Inset(-labelPadding)
		c.fill(box, labelBoxColor)
		c.text(click.Label, x, y, anchorCenterBottom, textColor)
	}

	drawAxis(c, f)

	for _, track := range Tracks {
		c.text(track.Key, f.plot.Min.X-8, f.y(track.Lane), anchorRightMiddle, track.Color)
	}

	return c.img
}

func drawAxis(c *canvas, f frame) {
	c.hline(f.plot.Min.X, f.plot.Max.X, f.plot.Max.Y, 1, axisColor)

	step := tickStep(f.span, targetTicks)
	decimals := tickDecimals(step)
	for i := 0; i <= maxTicks; i++ {
		v := float64(i) * step
		if v > f.span*(1+1e-9) {
			break
		}
		x := f.x(v)
		c.vline(x, f.plot.Max.Y, f.plot.Max.Y+tickLength, 1, textColor)
		c.text(strconv.FormatFloat(v, 'f', decimals, 64), x, f.plot.Max.Y+tickLength+2, anchorCenterTop, textColor)
	}

	c.text(axisTitle, f.plot.Min.X+f.plot.Dx()/2, f.plot.Max.Y+tickLength+textHeight()+12, anchorCenterTop, textColor)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// tickStep picks a 1-2-5 step giving roughly target ticks over span. Spans
// that are not finite and positive get the step of a one second axis.
func tickStep(span float64, target int) float64 {
	if !finite(span) || span <= 0 {
		span = 1
	}
	raw := span / float64(target)
	mag := math.Pow10(int(math.Floor(math.Log10(raw))))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

func tickDecimals(step float64) int {
	d := -int(math.Floor(math.Log10(step)))
	if d < 0 {
		return 0
	}
	return d
}
