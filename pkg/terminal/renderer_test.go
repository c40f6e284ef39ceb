package terminal

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-gooey/gooey/pkg/rendering"
)

func fill(img *image.RGBA, r image.Rectangle, c rendering.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func TestRenderer_OneCellPerPixelPair(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	fill(img, img.Bounds(), rendering.ColorRed)
	fill(img, image.Rect(0, 2, 3, 4), rendering.ColorBlue)

	r := NewRenderer()
	out := r.Render(img)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, 6, strings.Count(out, halfBlock))
	assert.Equal(t, 2, r.CachedStyles(), "one style per distinct color pair")
}

func TestRenderer_OddHeightPadsLastRow(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	fill(img, img.Bounds(), rendering.ColorGreen)

	r := NewRenderer()
	out := r.Render(img)

	assert.Len(t, strings.Split(out, "\n"), 2)
	assert.Equal(t, 4, strings.Count(out, halfBlock))
	_, ok := r.styles.Get(cellKey{upper: rendering.ColorGreen, lower: rendering.ColorTransparent})
	assert.True(t, ok)
}

func TestRenderer_ReusesStylesAcrossFrames(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	fill(img, img.Bounds(), rendering.ColorWhite)

	r := NewRenderer()
	first := r.Render(img)
	second := r.Render(img)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.CachedStyles())
}

func TestRenderer_EmptyImage(t *testing.T) {
	r := NewRenderer()
	assert.Empty(t, r.Render(image.NewRGBA(image.Rect(0, 0, 0, 0))))
}
