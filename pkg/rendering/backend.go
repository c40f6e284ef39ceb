// Package rendering holds the value types shared by widgets and backends
// (colors and integer rectangles) and the Backend drawing capability.
package rendering

// Backend is a drawing surface addressed in absolute pixel coordinates.
//
// Implementations live outside the widget core: a raster image, a terminal,
// a window surface. Draw calls cannot fail; a backend that hits an error
// deals with it itself.
type Backend interface {
	// FillRect fills the w×h rectangle whose top-left corner is (x, y).
	FillRect(x, y, w, h int, c Color)

	// DrawHorizLine draws a one-pixel line of length w starting at (x, y).
	DrawHorizLine(x, y, w int, c Color)

	// DrawVertLine draws a one-pixel line of length h starting at (x, y).
	DrawVertLine(x, y, h int, c Color)
}
