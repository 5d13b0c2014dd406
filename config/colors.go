package config

import "image/color"

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Pink       = color.RGBA{R: 255, G: 140, B: 190, A: 255}
	Brown      = color.RGBA{R: 150, G: 90, B: 50, A: 255}
	Ground     = color.RGBA{R: 110, G: 160, B: 90, A: 255}
	DarkGray   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Background = color.RGBA{R: 0xf7, G: 0xd7, B: 0xdb, A: 255}
)
