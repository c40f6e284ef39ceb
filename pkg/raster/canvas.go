// Package raster implements rendering.Backend over an in-memory RGBA image.
package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/go-gooey/gooey/pkg/rendering"
)

// Canvas is a Backend that draws into an *image.RGBA. Draws that fall
// partly or wholly outside the image are clipped.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a w×h canvas filled with transparent black.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image with a transparent w×h image.
// It is a no-op when the size is unchanged.
func (c *Canvas) Resize(w, h int) {
	if cw, ch := c.Size(); cw == w && ch == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// Clear fills the whole canvas with col, replacing what was there.
func (c *Canvas) Clear(col rendering.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// At returns the color of the pixel at (x, y), or transparent outside the
// canvas.
func (c *Canvas) At(x, y int) rendering.Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return rendering.ColorTransparent
	}
	return rendering.ColorFromImage(c.img.RGBAAt(x, y))
}

// FillRect composites col over the rectangle.
func (c *Canvas) FillRect(x, y, w, h int, col rendering.Color) {
	cw, ch := c.Size()
	r := rendering.RectFromXYWH(x, y, w, h).Intersect(rendering.RectFromXYWH(0, 0, cw, ch))
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r.ImageRect(), image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawHorizLine draws a one-pixel horizontal line.
func (c *Canvas) DrawHorizLine(x, y, w int, col rendering.Color) {
	c.FillRect(x, y, w, 1, col)
}

// DrawVertLine draws a one-pixel vertical line.
func (c *Canvas) DrawVertLine(x, y, h int, col rendering.Color) {
	c.FillRect(x, y, 1, h, col)
}

// Scale returns a copy of src resized to w×h with nearest-neighbour
// sampling, which keeps widget edges crisp.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
