package gradient

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput is returned for malformed hex colors and bad step counts.
var ErrInvalidInput = errors.New("invalid input")

// RampSteps is the number of shades in a viewer palette ramp.
const RampSteps = 10

// Start is the dark base color every palette ramp starts from.
var Start = Color{R: 0x37, G: 0x33, B: 0x43}

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a 6-digit hex RGB string, with an optional leading '#'.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidInput, s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidInput, s)
		}
		channels[i] = hi<<4 | lo
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the color as a 6-digit lowercase hex string.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ArrayLiteral formats the color as a source array literal line,
// e.g. "[0x37, 0x33, 0x43],".
func (c Color) ArrayLiteral() string {
	return fmt.Sprintf("[0x%02x, 0x%02x, 0x%02x],", c.R, c.G, c.B)
}

// RGB returns the channels as a plain [3]uint8 for the renderer.
func (c Color) RGB() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Lerp linearly interpolates between two colors per channel. t is clamped
// to [0, 1] and the result is rounded to the nearest channel value.
func Lerp(a, b Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	lerp := func(x, y uint8) uint8 {
		v := float64(x)*(1-t) + float64(y)*t
		return uint8(math.Round(v))
	}

	return Color{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
	}
}

// Linear computes an evenly spaced gradient of the given number of steps.
// The first element is always start and the last is always end. Fewer than
// two steps cannot hold both endpoints and is rejected.
func Linear(start, end Color, steps int) ([]Color, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidInput, steps)
	}

	colors := make([]Color, steps)
	for i := range colors {
		t := float64(i) / float64(steps-1)
		colors[i] = Lerp(start, end, t)
	}

	return colors, nil
}

// Ramp builds the viewer's fixed-size palette ramp from the base color to
// the given endpoint.
func Ramp(end Color) [RampSteps]Color {
	var ramp [RampSteps]Color

	// Linear only fails on steps < 2, which cannot happen here.
	colors, _ := Linear(Start, end, RampSteps)
	copy(ramp[:], colors)

	return ramp
}
