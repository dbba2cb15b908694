package statusbar

import (
	"image/color"
	"strconv"
)

// Color is one entry of the fixed status bar palette.
type Color uint8

const (
	Black Color = iota
	Navy
	Green
	Yellow
	Orange
	White
)

// palette holds the 888 expansion of the M5Stack RGB565 constants
// (BLACK 0x0000, NAVY 0x000F, GREEN 0x07E0, YELLOW 0xFFE0, ORANGE 0xFD20, WHITE 0xFFFF).
var palette = [...]color.RGBA{
	Black:  {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	Navy:   {R: 0x00, G: 0x00, B: 0x7B, A: 0xFF},
	Green:  {R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	Yellow: {R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
	Orange: {R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF},
	White:  {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

var colorNames = [...]string{
	Black:  "black",
	Navy:   "navy",
	Green:  "green",
	Yellow: "yellow",
	Orange: "orange",
	White:  "white",
}

// RGB returns the value handed to the display driver.
// Out of range colors render as black.
func (c Color) RGB() color.RGBA {
	if int(c) >= len(palette) {
		return palette[Black]
	}
	return palette[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return colorNames[c]
}
