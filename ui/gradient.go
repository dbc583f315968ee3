package ui

import (
	"github.com/veandco/go-sdl2/sdl"

	"sprawl/pkg/gradient"
)

// DrawGradientRect draws a vertical gradient rectangle
func DrawGradientRect(renderer *sdl.Renderer, x, y, width, height int32, startColor, endColor gradient.Color) {
	// Draw gradient by drawing horizontal lines with interpolated colors
	for i := int32(0); i < height; i++ {
		t := float64(i) / float64(height-1)

		c := gradient.Lerp(startColor, endColor, t)

		renderer.SetDrawColor(c.R, c.G, c.B, 255)
		renderer.DrawLine(x, y+i, x+width-1, y+i)
	}
}

// DrawRamp draws a palette ramp as a row of equally sized solid swatches.
// Used by the palette picker cards.
func DrawRamp(renderer *sdl.Renderer, x, y, width, height int32, ramp [gradient.RampSteps]gradient.Color) {
	swatch := width / int32(len(ramp))
	for i, c := range ramp {
		renderer.SetDrawColor(c.R, c.G, c.B, 255)
		renderer.FillRect(&sdl.Rect{X: x + int32(i)*swatch, Y: y, W: swatch, H: height})
	}
}
