package terminal

import "github.com/gdamore/tcell/v2"

// Color is a 16-entry palette index in CGA attribute order, so a packed
// color attribute is bg<<4 | fg
type Color uint8

const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorGray
	ColorDarkGray
	ColorBrightBlue
	ColorBrightGreen
	ColorBrightCyan
	ColorBrightRed
	ColorBrightMagenta
	ColorYellow
	ColorWhite
)

// tcellPalette maps CGA indices onto tcell's named 16-color palette
var tcellPalette = [16]tcell.Color{
	tcell.ColorBlack,
	tcell.ColorNavy,
	tcell.ColorGreen,
	tcell.ColorTeal,
	tcell.ColorMaroon,
	tcell.ColorPurple,
	tcell.ColorOlive,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlue,
	tcell.ColorLime,
	tcell.ColorAqua,
	tcell.ColorRed,
	tcell.ColorFuchsia,
	tcell.ColorYellow,
	tcell.ColorWhite,
}

// Tcell returns the tcell color for this palette entry
func (c Color) Tcell() tcell.Color {
	return tcellPalette[c&0x0F]
}

// PackAttr packs foreground and background into one attribute byte,
// matching the layout legacy bulk console formats expect
func PackAttr(fg, bg Color) byte {
	return byte(bg&0x0F)<<4 | byte(fg&0x0F)
}
