package stations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsCSV = `id,name,long,lat
1100,東京,139.766103,35.681391
1101,新宿,139.700464,35.689729
1102,渋谷,139.701238,35.658871
`

const joinCSV = `station_id1,station_id2
1100,1101
1101,1102
`

func TestReadStations(t *testing.T) {
	t.Parallel()

	list, err := ReadStations(strings.NewReader(stationsCSV))
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	// Dataset order is preserved.
	assert.Equal(t, ID(1100), list.At(0).ID)
	assert.Equal(t, "東京", list.At(0).Name)
	assert.InDelta(t, 139.766103, float64(list.At(0).Coord.Long), 1e-9)
	assert.InDelta(t, 35.681391, float64(list.At(0).Coord.Lat), 1e-9)
	assert.Equal(t, ID(1102), list.At(2).ID)

	shinjuku, ok := list.Get(1101)
	require.True(t, ok)
	assert.Equal(t, "新宿", shinjuku.Name)

	_, ok = list.Get(9999)
	assert.False(t, ok)
}

func TestReadStationsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad id", input: "id,name,long,lat\nabc,名前,139.0,35.0\n"},
		{name: "bad longitude", input: "id,name,long,lat\n1,名前,east,35.0\n"},
		{name: "too few fields", input: "id,name\n1,名前\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadStations(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestReadConnectionsBidirectional(t *testing.T) {
	t.Parallel()

	conns, err := ReadConnections(strings.NewReader(joinCSV))
	require.NoError(t, err)

	assert.ElementsMatch(t, []ID{1101}, conns.Neighbors(1100))
	assert.ElementsMatch(t, []ID{1100, 1102}, conns.Neighbors(1101))
	assert.ElementsMatch(t, []ID{1101}, conns.Neighbors(1102))
	assert.Empty(t, conns.Neighbors(42))
}

func TestStationString(t *testing.T) {
	t.Parallel()

	list, err := ReadStations(strings.NewReader(stationsCSV))
	require.NoError(t, err)

	s := list.At(0)
	assert.Contains(t, s.String(), "1100")
	assert.Contains(t, s.String(), "東京")
}
