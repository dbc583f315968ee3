package effects

import (
	"math/rand/v2"

	"sprawl/pkg/geo"
	"sprawl/pkg/stations"
	"sprawl/pkg/tile"
)

var trainColor = [3]uint8{0x2a, 0xaf, 0xdb}

// trackSection is one leg of a train's journey, between two directly
// connected stations.
type trackSection struct {
	startID stations.ID
	endID   stations.ID
	length  geo.Degree
}

// Train travels a path between two random stations, lighting up the track
// on the way.
type Train struct {
	// Shared with the world; needed to resolve station coordinates
	stations *stations.List

	// Station pairs to traverse in order
	sections []trackSection

	// What section of the line the train is currently on
	currentSection int

	// How much of the current section has been traveled, in degrees
	progress geo.Degree

	// How far to travel each move
	degreesPerMove geo.Degree

	arrivals chan<- stations.ID
}

// NewTrain builds a train between two random stations. The station graph
// has two connected components (Okinawa and everything else), so most
// random pairs have a path; when they don't, nil is returned and no train
// spawns this round.
func NewTrain(
	list *stations.List,
	connections stations.Connections,
	popularity *popularityMap,
	arrivals chan<- stations.ID,
	rng *rand.Rand,
) *Train {
	startID := list.At(rng.IntN(list.Len())).ID
	endID := list.At(rng.IntN(list.Len())).ID

	// The popularity score doubles as step cost and heuristic, so the
	// absolute shortest path isn't taken every time and less-traveled
	// stations see some trains too.
	neighbors := func(id stations.ID) []weightedNeighbor {
		ids := connections.Neighbors(id)
		result := make([]weightedNeighbor, 0, len(ids))
		for _, n := range ids {
			result = append(result, weightedNeighbor{id: n, cost: popularity.score(n)})
		}
		return result
	}

	path, ok := astar(startID, neighbors, popularity.score, endID)
	if !ok {
		return nil
	}

	sections := make([]trackSection, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		start, _ := list.Get(path[i-1])
		end, _ := list.Get(path[i])

		sections = append(sections, trackSection{
			startID: start.ID,
			endID:   end.ID,
			length:  start.Coord.DistanceTo(end.Coord),
		})
	}
	if len(sections) == 0 {
		return nil
	}

	// An exponential distribution gives a good range of speeds: lots of
	// local trains, the occasional express.
	degreesPerMove := geo.Degree(rng.ExpFloat64()*0.002 + 0.0005)

	return &Train{
		stations:       list,
		sections:       sections,
		degreesPerMove: degreesPerMove,
		arrivals:       arrivals,
	}
}

func (t *Train) Update() {
	// Travel a fixed amount of degrees per tick
	t.progress += t.degreesPerMove

	if t.currentSection >= len(t.sections) {
		return
	}

	section := t.sections[t.currentSection]
	if t.progress >= section.length {
		t.progress = 0
		t.currentSection++

		// Reached the station at the end of the section; update the
		// popularity map. Dropping the message when the channel is full is
		// fine, it only feeds rough heuristics.
		select {
		case t.arrivals <- section.endID:
		default:
		}
	}
}

func (t *Train) Valid() bool {
	return t.currentSection < len(t.sections)
}

func (t *Train) Priority() uint8 {
	return 1
}

func (t *Train) Colors(frame *geo.MapFrame) []TileColor {
	if t.currentSection >= len(t.sections) {
		return nil
	}
	section := t.sections[t.currentSection]

	path := t.currentPath(section, frame)
	if len(path) == 0 {
		return nil
	}

	// Find the tile in the current track piece that the train is on. Two
	// joined stations can share coordinates, giving a zero-length section;
	// the train then sits on the first tile until Update rolls over.
	index := 0
	if section.length > 0 {
		index = int(float64(t.progress) / float64(section.length) * float64(len(path)))
	}
	if index < 0 {
		index = 0
	}
	if index >= len(path) {
		index = len(path) - 1
	}
	current := path[index]

	var colors []TileColor
	it := tile.Box(current, frame.TrackWidth())
	for bt, ok := it.Next(); ok; bt, ok = it.Next() {
		colors = append(colors, TileColor{Tile: bt, Color: trainColor})
	}
	return colors
}

// currentPath returns the tile-wise path between the two stations the train
// is currently traveling between.
func (t *Train) currentPath(section trackSection, frame *geo.MapFrame) []tile.Tile {
	start, ok1 := t.stations.Get(section.startID)
	end, ok2 := t.stations.Get(section.endID)
	if !ok1 || !ok2 {
		return nil
	}

	return tile.Supercover(frame.GetTile(start.Coord), frame.GetTile(end.Coord))
}
