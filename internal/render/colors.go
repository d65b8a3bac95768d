package render

import "image/color"

// Scene colors.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorOrbitGuide = color.RGBA{80, 80, 80, 255}
	ColorTooltip    = color.RGBA{255, 255, 255, 255}
)

// StarColor returns the grey for a star of the given brightness (0-255).
func StarColor(brightness float64) color.RGBA {
	v := uint8(min(max(brightness, 0), 255))
	return color.RGBA{v, v, v, 255}
}
