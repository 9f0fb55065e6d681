package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the frame compositor flushed to the screen once per frame
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

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
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

// Clear resets all cells to blank default-styled space using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Fill sets every cell to a blank with the given background, keeping nothing
func (b *Buffer) Fill(bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Style: style}
	}
}

// Set writes a rune with fg over the cell's existing background
func (b *Buffer) Set(x, y int, r rune, fg tcell.Color, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	_, bg, _ := dst.Style.Decompose()
	dst.Rune = r
	dst.Style = tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs)
}

// SetStyle writes a rune with a full style, replacing the background
func (b *Buffer) SetStyle(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes s starting at x and returns the number of cells used
// Wide runes occupy two cells, the second holding a zero rune
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetStyle(col, y, r, style)
		if w == 2 {
			b.SetStyle(col+1, y, 0, style)
		}
		col += w
	}
	return col - x
}

// Get returns the cell at (x, y); out-of-bounds reads return the zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush copies the buffer to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			if c.Rune == 0 {
				// Trailing half of a wide rune
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
