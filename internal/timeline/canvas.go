//go:build !notimeline

package timeline

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type anchor int

const (
	anchorCenterBottom anchor = iota
	anchorCenterTop
	anchorRightMiddle
)

var face font.Face = basicfont.Face7x13

// canvas wraps an RGBA surface with the few primitives a timeline needs. All
// fills are alpha-blended over what is already drawn.
type canvas struct {
	img *image.RGBA
}

func newCanvas(width, height int, background color.NRGBA) *canvas {
	c := &canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return c
}

func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *canvas) vline(x, y0, y1, width int, col color.Color) {
	c.fill(image.Rect(x-width/2, y0, x-width/2+width, y1), col)
}

func (c *canvas) hline(x0, x1, y, width int, col color.Color) {
	c.fill(image.Rect(x0, y-width/2, x1, y-width/2+width), col)
}

// circleMask is an alpha mask of a filled disc.
type circleMask struct {
	center image.Point
	radius int
}

func (m circleMask) ColorModel() color.Model { return color.AlphaModel }

func (m circleMask) Bounds() image.Rectangle {
	return image.Rect(m.center.X-m.radius, m.center.Y-m.radius, m.center.X+m.radius+1, m.center.Y+m.radius+1)
}

func (m circleMask) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.radius*m.radius {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func (c *canvas) disc(cx, cy, radius int, col color.Color) {
	mask := circleMask{center: image.Pt(cx, cy), radius: radius}
	r := mask.Bounds()
	draw.DrawMask(c.img, r, image.NewUniform(col), image.Point{}, mask, r.Min, draw.Over)
}

func textWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

func textHeight() int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// textBounds returns where s lands when anchored at (x, y).
func textBounds(s string, x, y int, a anchor) image.Rectangle {
	w, h := textWidth(s), textHeight()
	switch a {
	case anchorCenterBottom:
		return image.Rect(x-w/2, y-h, x-w/2+w, y)
	case anchorCenterTop:
		return image.Rect(x-w/2, y, x-w/2+w, y+h)
	default:
		return image.Rect(x-w, y-h/2, x, y-h/2+h)
	}
}

func (c *canvas) text(s string, x, y int, a anchor, col color.Color) image.Rectangle {
	bounds := textBounds(s, x, y, a)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(bounds.Min.X, bounds.Min.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	return bounds
}
