// Package effects animates the map: blinking stations and trains traveling
// along tracks.
package effects

import (
	"sprawl/pkg/geo"
	"sprawl/pkg/tile"
)

// TileColor is one tile an effect wants colored this frame.
type TileColor struct {
	Tile  tile.Tile
	Color [3]uint8
}

// Effect is a transient animation layered over the base map.
type Effect interface {
	// Update advances the effect by one simulation step.
	Update()

	// Valid reports whether the effect is still alive. Once it returns
	// false the effect is removed on the next update cycle. It starts true
	// and only flips to false once.
	Valid() bool

	// Colors returns which tiles should be colored in, given the currently
	// visible MapFrame.
	Colors(frame *geo.MapFrame) []TileColor

	// Priority orders effects when they claim the same tile; higher wins.
	Priority() uint8
}
