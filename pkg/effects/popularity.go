package effects

import (
	"sync"

	"sprawl/pkg/stations"
)

const maxStationPopularity = 20

// popularityMap tracks how often trains visit each station so that the A*
// heuristic can steer new trains toward less-traveled stations.
type popularityMap struct {
	mu     sync.RWMutex
	visits map[stations.ID]uint32
}

func newPopularityMap() *popularityMap {
	return &popularityMap{visits: make(map[stations.ID]uint32)}
}

// record counts one arrival and damps the whole map once any station
// crosses the cap, so old traffic fades instead of dominating forever.
func (p *popularityMap) record(id stations.ID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visits[id]++

	var max uint32
	for _, v := range p.visits {
		if v > max {
			max = v
		}
	}
	if max > maxStationPopularity {
		for id := range p.visits {
			p.visits[id] /= maxStationPopularity / 10
		}
	}
}

// score returns the popularity of a station, defaulting to 1. It uses a
// non-blocking read; if the map is locked for writing it's fine to return
// the default, this only feeds rough heuristics.
func (p *popularityMap) score(id stations.ID) uint32 {
	if !p.mu.TryRLock() {
		return 1
	}
	defer p.mu.RUnlock()

	if v, ok := p.visits[id]; ok && v > 0 {
		return v
	}
	return 1
}
