package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprawl/pkg/tile"
)

func TestDistanceTo(t *testing.T) {
	t.Parallel()

	a := MapCoord{Long: 0, Lat: 0}
	b := MapCoord{Long: 3, Lat: 4}
	assert.InDelta(t, 5.0, float64(a.DistanceTo(b)), 1e-9)
	assert.InDelta(t, 5.0, float64(b.DistanceTo(a)), 1e-9)
	assert.Zero(t, float64(a.DistanceTo(a)))
}

func TestDefaultFrameFitsJapan(t *testing.T) {
	t.Parallel()

	f := DefaultFrame()
	assert.InDelta(t, float64(JapanRight-JapanLeft), float64(f.Width()), 1e-9)
	assert.InDelta(t, float64(JapanTop-JapanBottom), float64(f.Height()), 1e-9)
	assert.True(t, f.IsVisible(MapCoord{Long: JapanCenterLong, Lat: JapanCenterLat}))
}

func TestGetTileCenter(t *testing.T) {
	t.Parallel()

	f := DefaultFrame()
	center := f.GetTile(MapCoord{Long: JapanCenterLong, Lat: JapanCenterLat})
	assert.Equal(t, tile.Tile{X: 0, Y: 0}, center)

	// A coordinate east of the center lands on a tile with positive X.
	east := f.GetTile(MapCoord{Long: JapanCenterLong + 1, Lat: JapanCenterLat})
	assert.Greater(t, east.X, tile.Pos(0))

	// A coordinate north of the center lands on a tile with negative Y.
	north := f.GetTile(MapCoord{Long: JapanCenterLong, Lat: JapanCenterLat + 1})
	assert.Less(t, north.Y, tile.Pos(0))
}

func TestGetMapCoordRoundTrip(t *testing.T) {
	t.Parallel()

	f := DefaultFrame()

	topLeft := f.GetMapCoord(0, 0)
	assert.InDelta(t, float64(f.UpperLeft.Long), float64(topLeft.Long), 1e-9)
	assert.InDelta(t, float64(f.UpperLeft.Lat), float64(topLeft.Lat), 1e-9)

	bottomRight := f.GetMapCoord(ScreenWidth, ScreenHeight)
	assert.InDelta(t, float64(f.LowerRight.Long), float64(bottomRight.Long), 1e-9)
	assert.InDelta(t, float64(f.LowerRight.Lat), float64(bottomRight.Lat), 1e-9)
}

func TestIsVisible(t *testing.T) {
	t.Parallel()

	f := DefaultFrame()
	assert.True(t, f.IsVisible(MapCoord{Long: 135, Lat: 35}))
	assert.False(t, f.IsVisible(MapCoord{Long: 100, Lat: 35}))
	assert.False(t, f.IsVisible(MapCoord{Long: 135, Lat: 60}))
}

func TestIsVisibleZoomMargin(t *testing.T) {
	t.Parallel()

	// A tightly zoomed frame accepts coordinates slightly outside its
	// bounds so off-screen stations can still contribute tracks.
	f := MapFrame{
		UpperLeft:  MapCoord{Long: 139.0, Lat: 35.02},
		LowerRight: MapCoord{Long: 139.03, Lat: 35.0},
	}
	require.Less(t, float64(f.Height()), 0.05)

	justOutside := MapCoord{Long: f.LowerRight.Long + f.Width()*0.05, Lat: 35.01}
	assert.True(t, f.IsVisible(justOutside))
}

func TestWidthLadders(t *testing.T) {
	t.Parallel()

	frameWithHeight := func(h Degree) MapFrame {
		return MapFrame{
			UpperLeft:  MapCoord{Long: 139, Lat: 35 + h},
			LowerRight: MapCoord{Long: 140, Lat: 35},
		}
	}

	wide := frameWithHeight(10)
	assert.Equal(t, int32(1), wide.StationWidth())
	assert.Equal(t, int32(1), wide.TrackWidth())
	assert.Equal(t, 0, wide.FontLevel())

	tight := frameWithHeight(0.01)
	assert.Equal(t, int32(5), tight.StationWidth())
	assert.Equal(t, int32(2), tight.TrackWidth())
	assert.Equal(t, 9, tight.FontLevel())

	mid := frameWithHeight(0.07)
	assert.Equal(t, int32(3), mid.StationWidth())
	assert.Equal(t, int32(1), mid.TrackWidth())
	assert.Equal(t, 0, mid.FontLevel())
}

func TestZoomRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		scrollDiff float64
		expected   float64
	}{
		{name: "gentle zoom in", scrollDiff: 1.0, expected: 0.90},
		{name: "medium zoom in", scrollDiff: 15.0, expected: 0.80},
		{name: "forceful zoom in", scrollDiff: 25.0, expected: 0.70},
		{name: "gentle zoom out", scrollDiff: -1.0, expected: 1.10},
		{name: "forceful zoom out", scrollDiff: -25.0, expected: 1.30},
		{name: "clamped above max", scrollDiff: 1000.0, expected: 0.70},
		{name: "clamped below min", scrollDiff: -1000.0, expected: 1.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, ZoomRatio(tt.scrollDiff), 1e-9)
		})
	}
}

func TestVisibleTilesCoversFrame(t *testing.T) {
	t.Parallel()

	f := DefaultFrame()
	tiles := f.VisibleTiles().Collect()
	require.NotEmpty(t, tiles)

	first := f.GetTile(f.UpperLeft)
	last := f.GetTile(f.LowerRight)
	assert.Equal(t, first, tiles[0])
	assert.Equal(t, last, tiles[len(tiles)-1])
}
