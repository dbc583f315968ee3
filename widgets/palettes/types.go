package palettes

import "sprawl/pkg/gradient"

// Card represents one label palette choice with its ramp preview
type Card struct {
	Title       string
	Description string
	Ramp        [gradient.RampSteps]gradient.Color
}
