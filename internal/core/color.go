package core

import "image/color"

// Color is a palette index shared by every front end. The terminal maps it
// to an ANSI 256 code, the window maps it to RGBA.
type Color uint8

// Palette entries. The neon set mirrors the arcade's cabinet colors.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
	ColorBlue
	ColorGray
	ColorDim
)

var paletteRGBA = [...]color.RGBA{
	ColorDefault: {R: 230, G: 246, B: 255, A: 255},
	ColorCyan:    {R: 90, G: 240, B: 255, A: 255},
	ColorMagenta: {R: 255, G: 123, B: 240, A: 255},
	ColorWhite:   {R: 230, G: 246, B: 255, A: 255},
	ColorOrange:  {R: 255, G: 180, B: 90, A: 255},
	ColorYellow:  {R: 255, G: 230, B: 90, A: 255},
	ColorGreen:   {R: 120, G: 255, B: 160, A: 255},
	ColorRed:     {R: 255, G: 90, B: 110, A: 255},
	ColorBlue:    {R: 110, G: 150, B: 255, A: 255},
	ColorGray:    {R: 150, G: 160, B: 180, A: 255},
	ColorDim:     {R: 70, G: 80, B: 110, A: 255},
}

// RGBA returns the color's value for pixel front ends.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(paletteRGBA) {
		return paletteRGBA[c]
	}
	return paletteRGBA[ColorDefault]
}

// TokenColors is the palette used for grid tokens with values 1..n.
var TokenColors = []Color{ColorCyan, ColorMagenta, ColorOrange, ColorGreen, ColorYellow, ColorBlue, ColorRed}

// TokenColor maps a non-zero grid value to a palette entry.
func TokenColor(v int) Color {
	if v <= 0 {
		return ColorDim
	}
	return TokenColors[(v-1)%len(TokenColors)]
}
