package effects

import (
	"math/rand/v2"

	"sprawl/pkg/geo"
	"sprawl/pkg/stations"
	"sprawl/pkg/tile"
)

var stationBlinkColor = [3]uint8{0xff, 0xff, 0x00}

// StationBlink is a station that blinks for a few hundred frames.
type StationBlink struct {
	coord           geo.MapCoord
	remainingFrames uint16
}

// NewStationBlink picks a random station to blink.
func NewStationBlink(list *stations.List, rng *rand.Rand) *StationBlink {
	station := list.At(rng.IntN(list.Len()))

	return &StationBlink{
		coord:           station.Coord,
		remainingFrames: uint16(500 + rng.IntN(500)),
	}
}

func (b *StationBlink) Update() {
	if b.remainingFrames > 0 {
		b.remainingFrames--
	}
}

func (b *StationBlink) Valid() bool {
	return b.remainingFrames > 0
}

func (b *StationBlink) Priority() uint8 {
	return 2
}

func (b *StationBlink) Colors(frame *geo.MapFrame) []TileColor {
	// Blink every x frames
	const blinkRate = 100
	if b.remainingFrames%blinkRate*2 >= blinkRate {
		return nil
	}

	center := frame.GetTile(b.coord)

	var colors []TileColor
	it := tile.Box(center, frame.StationWidth())
	for t, ok := it.Next(); ok; t, ok = it.Next() {
		colors = append(colors, TileColor{Tile: t, Color: stationBlinkColor})
	}
	return colors
}
