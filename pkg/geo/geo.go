// Package geo holds the map geometry: lat/long coordinates and the frame of
// the map the user is currently looking at.
package geo

import (
	"fmt"
	"math"
)

const (
	ScreenWidth  = 200
	ScreenHeight = 150

	JapanLeft   Degree = 127.59
	JapanRight  Degree = 145.77
	JapanTop    Degree = 46.5
	JapanBottom Degree = 25.9

	// Arbitrary coordinate for the (0, 0) tile
	JapanCenterLong Degree = 137.71062
	JapanCenterLat  Degree = 36.035645

	// Velocity limit for how fast you can zoom in/out
	ScrollDiffMax = 30.0

	// TileSize is the side-length, in pixels, of one "tile" on the map.
	// A tile is the smallest unit that can be marked as having a station or
	// not. Currently this is 1, so one pixel is equal to one tile.
	TileSize = 1

	NumberOfTilesX = ScreenWidth / TileSize
	NumberOfTilesY = ScreenHeight / TileSize

	// MinZoom is the smallest width the current MapFrame can have
	MinZoom Degree = 0.01
	// MaxZoom is the largest width the current MapFrame can have
	MaxZoom Degree = 80.0
)

// Degree is a longitude or latitude value, or a distance between two.
type Degree float64

// MapCoord is a point on the map in longitude/latitude.
type MapCoord struct {
	Long Degree
	Lat  Degree
}

// DistanceTo returns the euclidean distance between two coordinates, in
// degrees. Good enough at Japan's scale; this is a visualization, not a
// navigation system.
func (c MapCoord) DistanceTo(other MapCoord) Degree {
	longDist := float64(c.Long - other.Long)
	latDist := float64(c.Lat - other.Lat)

	return Degree(math.Sqrt(longDist*longDist + latDist*latDist))
}

func (c MapCoord) String() string {
	return fmt.Sprintf("(%g, %g)", float64(c.Long), float64(c.Lat))
}

// ZoomRatio returns the ratio that the side lengths of the current MapFrame
// should change, given an amount that was scrolled. For example, 1.1 means a
// frame showing 10 degrees of longitude should grow to show 11.
func ZoomRatio(scrollDiff float64) float64 {
	// scrollDiff varies between about 0.1 and 30 for very forceful scrolling
	clamped := scrollDiff
	if clamped > ScrollDiffMax {
		clamped = ScrollDiffMax
	} else if clamped < -ScrollDiffMax {
		clamped = -ScrollDiffMax
	}

	sign := 1.0
	if math.Signbit(clamped) {
		sign = -1.0
	}
	ratio := math.Abs(clamped) / ScrollDiffMax

	// Three levels of zooming depending on how fast the wheel is scrolled
	var offset float64
	switch {
	case ratio < 0.33:
		offset = 0.10
	case ratio < 0.66:
		offset = 0.20
	default:
		offset = 0.30
	}

	return 1.0 - offset*sign
}
