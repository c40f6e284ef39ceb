// Package terminal hosts a widget tree in a terminal. Each character cell
// shows two vertically stacked pixels using the upper half block glyph, so a
// cols×rows terminal presents a cols×(2·rows) pixel canvas.
package terminal

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-gooey/gooey/pkg/rendering"
)

const halfBlock = "▀"

// defaultStyleCacheSize bounds the number of distinct color pairs kept.
const defaultStyleCacheSize = 512

type cellKey struct {
	upper rendering.Color
	lower rendering.Color
}

// Renderer converts images into styled half-block text.
type Renderer struct {
	styles *lru.Cache[cellKey, lipgloss.Style]
}

// NewRenderer returns a Renderer with a bounded style cache.
func NewRenderer() *Renderer {
	cache, _ := lru.New[cellKey, lipgloss.Style](defaultStyleCacheSize)
	return &Renderer{styles: cache}
}

func hex(c rendering.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (r *Renderer) style(k cellKey) lipgloss.Style {
	if s, ok := r.styles.Get(k); ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.upper.A != 0 {
		s = s.Foreground(hex(k.upper))
	}
	if k.lower.A != 0 {
		s = s.Background(hex(k.lower))
	}
	r.styles.Add(k, s)
	return s
}

// CachedStyles returns the number of color pairs currently cached.
func (r *Renderer) CachedStyles() int {
	return r.styles.Len()
}

func pixel(img image.Image, x, y int) rendering.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return rendering.ColorTransparent
	}
	return rendering.ColorFromImage(img.At(x, y))
}

// Render returns one line per pair of pixel rows. Runs of cells sharing
// a color pair are styled together.
func (r *Renderer) Render(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var cur cellKey
		for x := b.Min.X; x < b.Max.X; x++ {
			k := cellKey{upper: pixel(img, x, y), lower: pixel(img, x, y+1)}
			if x > b.Min.X && k != cur {
				sb.WriteString(r.style(cur).Render(run.String()))
				run.Reset()
			}
			cur = k
			run.WriteString(halfBlock)
		}
		if run.Len() > 0 {
			sb.WriteString(r.style(cur).Render(run.String()))
		}
	}
	return sb.String()
}
