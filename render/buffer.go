package render

import (
	"math"
	"strings"
)

// plotResult classifies the outcome of a depth-tested write
type plotResult uint8

const (
	plotWritten plotResult = iota
	plotOutOfBounds
	plotOccluded
)

// Buffer pairs a glyph grid with a per-cell inverse-depth grid
// Both slices are row-major, sized once at construction, and always the same length
type Buffer struct {
	glyphs     []rune
	depth      []float64
	width      int
	height     int
	background rune
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int, background rune) *Buffer {
	size := width * height
	b := &Buffer{
		glyphs:     make([]rune, size),
		depth:      make([]float64, size),
		width:      width,
		height:     height,
		background: background,
	}
	b.Clear()
	return b
}

// Clear resets every glyph to background and every depth to 0 using exponential copy
func (b *Buffer) Clear() {
	if len(b.glyphs) == 0 {
		return
	}
	b.glyphs[0] = b.background
	for filled := 1; filled < len(b.glyphs); filled *= 2 {
		copy(b.glyphs[filled:], b.glyphs[:filled])
	}
	b.depth[0] = 0
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Plot writes glyph at (x, y) if ooz is nearer than the stored depth
// Out-of-bounds and non-finite candidates are discarded silently
func (b *Buffer) Plot(x, y int, ooz float64, glyph rune) bool {
	return b.plot(x, y, ooz, glyph) == plotWritten
}

func (b *Buffer) plot(x, y int, ooz float64, glyph rune) plotResult {
	// Row overflow can land a valid linear index on the wrong row, so check axes first
	if !b.inBounds(x, y) {
		return plotOutOfBounds
	}
	idx := y*b.width + x
	if idx < 0 || idx >= len(b.glyphs) {
		return plotOutOfBounds
	}
	// NaN compares false; +Inf is rejected explicitly
	if math.IsInf(ooz, 0) || !(ooz > b.depth[idx]) {
		return plotOccluded
	}
	b.depth[idx] = ooz
	b.glyphs[idx] = glyph
	return plotWritten
}

// Glyph returns the glyph at (x, y), or 0 when out of bounds
func (b *Buffer) Glyph(x, y int) rune {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.glyphs[y*b.width+x]
}

// Depth returns the stored inverse depth at (x, y), or 0 when out of bounds
func (b *Buffer) Depth(x, y int) float64 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.depth[y*b.width+x]
}

// Cells exposes the glyph grid for zero-copy presentation
// Cells are row-major: cells[y*width + x]
func (b *Buffer) Cells() []rune {
	return b.glyphs
}

func (b *Buffer) Width() int { return b.width }
func (b *Buffer) Height() int { return b.height }

// String renders the glyph grid as height lines of width runes
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for _, r := range b.glyphs[y*b.width : (y+1)*b.width] {
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
