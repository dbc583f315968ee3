package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorRowMajor(t *testing.T) {
	t.Parallel()

	it := NewIterator(Tile{X: 0, Y: 0}, Tile{X: 2, Y: 1})
	expected := []Tile{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}
	assert.Equal(t, expected, it.Collect())
}

func TestIteratorSingleTile(t *testing.T) {
	t.Parallel()

	it := NewIterator(Tile{X: 5, Y: 5}, Tile{X: 5, Y: 5})
	assert.Equal(t, []Tile{{X: 5, Y: 5}}, it.Collect())
}

func TestBox(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		center Tile
		side   int32
		want   []Tile
	}{
		{
			name:   "side one is just the center",
			center: Tile{X: 3, Y: 3},
			side:   1,
			want:   []Tile{{X: 3, Y: 3}},
		},
		{
			name:   "side three is centered",
			center: Tile{X: 0, Y: 0},
			side:   3,
			want: []Tile{
				{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
				{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
				{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Box(tt.center, tt.side).Collect())
		})
	}
}

func TestBoxEvenSide(t *testing.T) {
	t.Parallel()

	// An even side length cannot be truly centered; the box extends one
	// extra tile right and down.
	tiles := Box(Tile{X: 0, Y: 0}, 2).Collect()
	assert.Len(t, tiles, 4)
	assert.Contains(t, tiles, Tile{X: 0, Y: 0})
	assert.Contains(t, tiles, Tile{X: 1, Y: 0})
	assert.Contains(t, tiles, Tile{X: 0, Y: 1})
	assert.Contains(t, tiles, Tile{X: 1, Y: 1})
}

func TestSupercoverEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Tile
	}{
		{name: "horizontal", a: Tile{X: 0, Y: 0}, b: Tile{X: 5, Y: 0}},
		{name: "vertical", a: Tile{X: 2, Y: -3}, b: Tile{X: 2, Y: 4}},
		{name: "diagonal", a: Tile{X: 0, Y: 0}, b: Tile{X: 4, Y: 4}},
		{name: "shallow", a: Tile{X: 0, Y: 0}, b: Tile{X: 7, Y: 2}},
		{name: "steep negative", a: Tile{X: 3, Y: 3}, b: Tile{X: 1, Y: -5}},
		{name: "degenerate", a: Tile{X: 1, Y: 1}, b: Tile{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tiles := Supercover(tt.a, tt.b)
			require.NotEmpty(t, tiles)
			assert.Equal(t, tt.a, tiles[0])
			assert.Equal(t, tt.b, tiles[len(tiles)-1])
		})
	}
}

func TestSupercoverConnected(t *testing.T) {
	t.Parallel()

	// Consecutive tiles never jump more than one step on either axis, so
	// the rasterized line has no gaps.
	tiles := Supercover(Tile{X: -3, Y: 7}, Tile{X: 11, Y: -2})
	for i := 1; i < len(tiles); i++ {
		dx := int32(tiles[i].X - tiles[i-1].X)
		dy := int32(tiles[i].Y - tiles[i-1].Y)
		assert.LessOrEqual(t, abs64(int64(dx)), int64(1))
		assert.LessOrEqual(t, abs64(int64(dy)), int64(1))
	}
}

func TestSupercoverHorizontalRun(t *testing.T) {
	t.Parallel()

	tiles := Supercover(Tile{X: 0, Y: 0}, Tile{X: 3, Y: 0})
	assert.Equal(t, []Tile{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, tiles)
}
