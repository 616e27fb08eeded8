package terminal

// Cell represents a single character cell
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Attr returns the cell's packed color attribute (bg<<4 | fg)
func (c Cell) Attr() byte {
	return PackAttr(c.Fg, c.Bg)
}

// DefaultFg and DefaultBg are the colors a cleared cell takes when the
// caller does not choose others
const (
	DefaultFg = ColorGray
	DefaultBg = ColorBlack
)
