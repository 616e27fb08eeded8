package terminal

// BorderStyle selects the box drawing glyph set
type BorderStyle uint8

const (
	BorderLight  BorderStyle = iota // ┌─┐│└┘
	BorderHeavy                     // ┏━┓┃┗┛
	BorderDouble                    // ╔═╗║╚╝
)

// borderChars contains box drawing glyph sets indexed by BorderStyle
var borderChars = [...][6]rune{
	BorderLight:  {'┌', '─', '┐', '│', '└', '┘'},
	BorderHeavy:  {'┏', '━', '┓', '┃', '┗', '┛'},
	BorderDouble: {'╔', '═', '╗', '║', '╚', '╝'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Buffer is the off-screen cell grid, row-major: cells[y*width + x].
// All drawing methods clip per cell; coordinates outside the grid are
// silently ignored and never indexed.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear(' ', DefaultFg, DefaultBg)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// At returns the cell at (x, y), false if out of bounds
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Cells exposes the row-major cell array for the bulk display write
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// inBounds returns true if (x, y) is inside the grid
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell if in bounds
func (b *Buffer) Set(x, y int, ch rune, fg, bg Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ch, Fg: fg, Bg: bg}
}

// HLine writes count consecutive cells starting at (left, top) along +x.
// Each cell is bounds-checked individually, so a run may be partially
// clipped without aborting the rest.
func (b *Buffer) HLine(left, top int, ch rune, count int, fg, bg Color) {
	for i := 0; i < count; i++ {
		b.Set(left+i, top, ch, fg, bg)
	}
}

// VLine writes count consecutive cells starting at (left, top) along +y
func (b *Buffer) VLine(left, top int, ch rune, count int, fg, bg Color) {
	for i := 0; i < count; i++ {
		b.Set(left, top+i, ch, fg, bg)
	}
}

// Fill writes a w×h block of ch starting at (left, top)
func (b *Buffer) Fill(left, top, w, h int, ch rune, fg, bg Color) {
	// Fast reject: block starts entirely past the grid
	if left >= b.width || top >= b.height {
		return
	}
	for y := top; y < top+h; y++ {
		for x := left; x < left+w; x++ {
			b.Set(x, y, ch, fg, bg)
		}
	}
}

// Text writes a string left-to-right starting at (x, y), no wrapping
func (b *Buffer) Text(x, y int, text string, fg, bg Color) {
	i := 0
	for _, ch := range text {
		b.Set(x+i, y, ch, fg, bg)
		i++
	}
}

// Box draws the four border edges of a w×h rectangle at (left, top) using
// the glyph set for style, then fills the interior with spaces if filled.
// Degenerate sizes (w<2 or h<2) simply produce overlapping edges.
func (b *Buffer) Box(left, top, w, h int, filled bool, style BorderStyle, fg, bg Color) {
	if w < 1 || h < 1 {
		return
	}
	if style >= BorderStyle(len(borderChars)) {
		style = BorderLight
	}
	chars := borderChars[style]

	right := left + w - 1
	bottom := top + h - 1

	// Corners
	b.Set(left, top, chars[boxTL], fg, bg)
	b.Set(right, top, chars[boxTR], fg, bg)
	b.Set(left, bottom, chars[boxBL], fg, bg)
	b.Set(right, bottom, chars[boxBR], fg, bg)

	// Horizontal edges
	for x := left + 1; x < right; x++ {
		b.Set(x, top, chars[boxH], fg, bg)
		b.Set(x, bottom, chars[boxH], fg, bg)
	}

	// Vertical edges
	for y := top + 1; y < bottom; y++ {
		b.Set(left, y, chars[boxV], fg, bg)
		b.Set(right, y, chars[boxV], fg, bg)
	}

	if filled {
		b.Fill(left+1, top+1, w-2, h-2, ' ', fg, bg)
	}
}

// Clear sets every cell to ch with the given colors using exponential copy
func (b *Buffer) Clear(ch rune, fg, bg Color) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ch, Fg: fg, Bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}
