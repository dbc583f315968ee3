// Package tile models the virtual pixel grid the map is drawn on.
package tile

import "math"

// Pos is a tile coordinate along one axis.
type Pos int32

// Tile is one cell of the virtual pixel grid.
type Tile struct {
	X Pos
	Y Pos
}

// Box returns an iterator over the square of tiles with the given center and
// side length.
func Box(center Tile, sideLength int32) *Iterator {
	// Needed to make the calculations work
	sideLength--

	half := int32(math.Floor(float64(sideLength) / 2.0))
	xStart := int32(center.X) - half
	xEnd := int32(center.X) + half
	yStart := int32(center.Y) - half
	yEnd := int32(center.Y) + half

	// Account for "uneven" boxes
	if sideLength%2 == 1 {
		xEnd++
		yEnd++
	}

	upperLeft := Tile{X: Pos(xStart), Y: Pos(yStart)}
	lowerRight := Tile{X: Pos(xEnd), Y: Pos(yEnd)}

	return NewIterator(upperLeft, lowerRight)
}

// Iterator steps through tiles in order from the top row to the bottom row,
// going left-to-right within a row.
type Iterator struct {
	upperLeft  Tile
	lowerRight Tile
	x          Pos
	y          Pos
}

// NewIterator creates an iterator over the rectangle spanned by the two
// corner tiles, both inclusive.
func NewIterator(upperLeft, lowerRight Tile) *Iterator {
	return &Iterator{
		upperLeft:  upperLeft,
		lowerRight: lowerRight,
		x:          upperLeft.X,
		y:          upperLeft.Y,
	}
}

// Next returns the next tile, or false once the rectangle is exhausted.
func (it *Iterator) Next() (Tile, bool) {
	if it.y > it.lowerRight.Y {
		return Tile{}, false
	}

	result := Tile{X: it.x, Y: it.y}
	if it.x < it.lowerRight.X {
		it.x++
	} else {
		// Reached the end of the row, go to the next one
		it.x = it.upperLeft.X
		it.y++
	}

	return result, true
}

// Collect drains the iterator into a slice.
func (it *Iterator) Collect() []Tile {
	var tiles []Tile
	for t, ok := it.Next(); ok; t, ok = it.Next() {
		tiles = append(tiles, t)
	}
	return tiles
}
