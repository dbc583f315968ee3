// Package stations loads the rail dataset: every station in Japan and the
// track connections between them.
package stations

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"sprawl/pkg/geo"
)

// ID identifies a station. Values come from the dataset.
type ID uint32

// Station corresponds to one entry in stations.csv.
type Station struct {
	ID    ID
	Name  string
	Coord geo.MapCoord
}

func (s *Station) String() string {
	return fmt.Sprintf("%d %s %s", s.ID, s.Name, s.Coord)
}

// List holds all stations, preserving dataset order so stations can be
// picked by index (effects choose random stations that way).
type List struct {
	order []*Station
	byID  map[ID]*Station
}

// Len returns the number of stations.
func (l *List) Len() int {
	return len(l.order)
}

// At returns the station at the given dataset position.
func (l *List) At(i int) *Station {
	return l.order[i]
}

// Get looks a station up by ID.
func (l *List) Get(id ID) (*Station, bool) {
	s, ok := l.byID[id]
	return s, ok
}

// All returns the stations in dataset order. The slice is shared; callers
// must not modify it.
func (l *List) All() []*Station {
	return l.order
}

// Connections maps each station to the set of stations it has direct track
// to. Every connection is stored in both directions.
type Connections map[ID]map[ID]struct{}

// Neighbors returns the IDs directly connected to the given station.
func (c Connections) Neighbors(id ID) []ID {
	set, ok := c[id]
	if !ok {
		return nil
	}

	neighbors := make([]ID, 0, len(set))
	for n := range set {
		neighbors = append(neighbors, n)
	}
	return neighbors
}

func (c Connections) add(a, b ID) {
	if c[a] == nil {
		c[a] = make(map[ID]struct{})
	}
	if c[b] == nil {
		c[b] = make(map[ID]struct{})
	}
	c[a][b] = struct{}{}
	c[b][a] = struct{}{}
}

// LoadStations reads a stations.csv file (id,name,long,lat with a header
// row) into a List.
func LoadStations(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stations file: %w", err)
	}
	defer f.Close()

	return ReadStations(f)
}

// ReadStations parses station records from the given reader.
func ReadStations(r io.Reader) (*List, error) {
	reader := csv.NewReader(r)

	// Header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read stations header: %w", err)
	}

	list := &List{byID: make(map[ID]*Station)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read station record: %w", err)
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("station record has %d fields, want 4", len(record))
		}

		id, err := strconv.ParseUint(record[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad station id %q: %w", record[0], err)
		}
		long, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad longitude %q: %w", record[2], err)
		}
		lat, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("bad latitude %q: %w", record[3], err)
		}

		station := &Station{
			ID:    ID(id),
			Name:  record[1],
			Coord: geo.MapCoord{Long: geo.Degree(long), Lat: geo.Degree(lat)},
		}

		list.order = append(list.order, station)
		list.byID[station.ID] = station
	}

	return list, nil
}

// LoadConnections reads a join.csv file (id1,id2 with a header row) into a
// bidirectional Connections map.
func LoadConnections(path string) (Connections, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open connections file: %w", err)
	}
	defer f.Close()

	return ReadConnections(f)
}

// ReadConnections parses connection records from the given reader.
func ReadConnections(r io.Reader) (Connections, error) {
	reader := csv.NewReader(r)

	// Header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read connections header: %w", err)
	}

	connections := make(Connections)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read connection record: %w", err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("connection record has %d fields, want 2", len(record))
		}

		id1, err := strconv.ParseUint(record[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad station id %q: %w", record[0], err)
		}
		id2, err := strconv.ParseUint(record[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad station id %q: %w", record[1], err)
		}

		connections.add(ID(id1), ID(id2))
	}

	return connections, nil
}
