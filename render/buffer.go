package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell of composed output
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a cell compositor the projectors draw into. One buffer per
// rendering surface; Clear between frames, FlushToScreen to present.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to empty-on-black
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RGBBlack, Bg: RGBBlack}
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// At returns the composed cell, or a zero cell out of bounds
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set composites a cell with the given blend mode and alpha
func (b *Buffer) Set(x, y int, r rune, fg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	switch mode {
	case BlendReplace:
		dst.Fg = fg
	case BlendAlpha:
		dst.Fg = dst.Fg.Blend(fg, alpha)
	case BlendAdd:
		dst.Fg = dst.Fg.Add(fg.Scale(alpha))
	}
	if r != 0 {
		dst.Rune = r
	}
}

// WriteString draws a plain string with an opaque foreground
func (b *Buffer) WriteString(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.Set(x, y, r, fg, BlendReplace, 1)
		x++
	}
}

// FlushToScreen pushes the composed cells to a tcell screen. The caller
// owns Show.
func (b *Buffer) FlushToScreen(s tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			s.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
