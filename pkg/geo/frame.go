package geo

import (
	"sprawl/pkg/tile"
)

// MapFrame is the rectangular view onto the map the user is currently
// looking at. Values are lat/long.
type MapFrame struct {
	UpperLeft  MapCoord
	LowerRight MapCoord
}

// DefaultFrame returns a MapFrame that fits most of Japan.
func DefaultFrame() MapFrame {
	return MapFrame{
		UpperLeft:  MapCoord{Long: JapanLeft, Lat: JapanTop},
		LowerRight: MapCoord{Long: JapanRight, Lat: JapanBottom},
	}
}

// Width returns the longitudinal extent of the frame.
func (f *MapFrame) Width() Degree {
	return f.LowerRight.Long - f.UpperLeft.Long
}

// Height returns the latitudinal extent of the frame.
func (f *MapFrame) Height() Degree {
	return f.UpperLeft.Lat - f.LowerRight.Lat
}

// GetTile returns the tile that contains the given map coordinate.
func (f *MapFrame) GetTile(coord MapCoord) tile.Tile {
	degreesFromCenterX := coord.Long - JapanCenterLong
	degreesFromCenterY := JapanCenterLat - coord.Lat

	// The number of degrees per tile depends on how far we're zoomed in,
	// i.e. the dimensions of the current MapFrame
	degreesPerTileX := f.Width() / NumberOfTilesX
	degreesPerTileY := f.Height() / NumberOfTilesY

	// There's no bounds-checking on panning, so panning very far from the
	// tile center could overflow the int32 offsets, but everything will be
	// offscreen anyway.
	tileOffsetLeft := int32(degreesFromCenterX / degreesPerTileX)
	tileOffsetTop := int32(degreesFromCenterY / degreesPerTileY)

	return tile.Tile{X: tile.Pos(tileOffsetLeft), Y: tile.Pos(tileOffsetTop)}
}

// VisibleTiles returns an iterator over all tiles in this frame.
func (f *MapFrame) VisibleTiles() *tile.Iterator {
	upperLeft := f.GetTile(f.UpperLeft)
	lowerRight := f.GetTile(f.LowerRight)

	return tile.NewIterator(upperLeft, lowerRight)
}

// DegreesPerPixel returns how many map degrees (long and lat) a single
// screen pixel currently represents.
func (f *MapFrame) DegreesPerPixel() (Degree, Degree) {
	return f.Width() / ScreenWidth, f.Height() / ScreenHeight
}

// GetMapCoord translates a visible screen pixel position to a map coordinate.
func (f *MapFrame) GetMapCoord(pixelX, pixelY int32) MapCoord {
	degreesPerPixelX, degreesPerPixelY := f.DegreesPerPixel()

	// Offsets from the top-left corner
	return MapCoord{
		Long: f.UpperLeft.Long + degreesPerPixelX*Degree(pixelX),
		Lat:  f.UpperLeft.Lat - degreesPerPixelY*Degree(pixelY),
	}
}

// IsVisible reports whether the given MapCoord is inside this MapFrame.
func (f *MapFrame) IsVisible(coord MapCoord) bool {
	// At high zoom levels, add a margin to the bounds so that tracks and
	// station names originating from a station just off-screen still get
	// drawn, avoiding pop-in.
	var margin Degree
	if f.Height() < 0.05 {
		// Rough formula that seems to work well; start at a 10% margin and
		// increase as we zoom in more
		margin = 0.10 + (0.05 - f.Height())
	}

	return coord.Long >= f.UpperLeft.Long-f.Width()*margin &&
		coord.Long <= f.LowerRight.Long+f.Width()*margin &&
		coord.Lat <= f.UpperLeft.Lat+f.Height()*margin &&
		coord.Lat >= f.LowerRight.Lat-f.Height()*margin
}

// StationWidth returns how many tiles (on one side) to use to draw a station.
func (f *MapFrame) StationWidth() int32 {
	height := f.Height()

	switch {
	case height < 0.02:
		return 5
	case height < 0.05:
		return 4
	case height < 0.1:
		return 3
	case height < 0.3:
		return 2
	default:
		return 1
	}
}

// TrackWidth returns how many tiles (on one side) to use to draw a track piece.
func (f *MapFrame) TrackWidth() int32 {
	if f.Height() < 0.06 {
		return 2
	}
	return 1
}

// FontLevel returns how bright/emphasized (0-9) station labels should be at
// the current zoom level.
func (f *MapFrame) FontLevel() int {
	// Labels don't even appear until the frame height drops below 0.5
	height := f.Height()

	switch {
	case height < 0.015:
		return 9
	case height < 0.0175:
		return 8
	case height < 0.02:
		return 7
	case height < 0.025:
		return 6
	case height < 0.03:
		return 5
	case height < 0.035:
		return 4
	case height < 0.04:
		return 3
	case height < 0.045:
		return 2
	case height < 0.05:
		return 1
	default:
		return 0
	}
}
