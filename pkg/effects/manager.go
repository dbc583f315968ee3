package effects

import (
	"context"
	"math/rand/v2"
	"sort"
	"time"

	"sprawl/pkg/geo"
	"sprawl/pkg/stations"
	"sprawl/pkg/tile"
)

const maxEffects = 500

// Manager owns all live effects and the station popularity bookkeeping that
// steers train pathfinding.
type Manager struct {
	effects     []Effect
	stations    *stations.List
	connections stations.Connections

	popularity *popularityMap

	// Trains report station arrivals here; a background goroutine folds
	// them into the popularity map so Update never blocks on the lock.
	arrivals chan stations.ID

	rng    *rand.Rand
	cancel context.CancelFunc
}

// NewManager creates a Manager and starts the popularity goroutine.
func NewManager(list *stations.List, connections stations.Connections) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		stations:    list,
		connections: connections,
		popularity:  newPopularityMap(),
		arrivals:    make(chan stations.ID, 256),
		rng:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32)),
		cancel:      cancel,
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-m.arrivals:
				m.popularity.record(id)
			}
		}
	}()

	return m
}

// Close stops the popularity goroutine.
func (m *Manager) Close() {
	m.cancel()
}

// Update advances all effects by one step, drops the expired ones and maybe
// spawns new ones.
func (m *Manager) Update() {
	for _, effect := range m.effects {
		effect.Update()
	}

	// Remove any expired effects
	live := m.effects[:0]
	for _, effect := range m.effects {
		if effect.Valid() {
			live = append(live, effect)
		}
	}
	m.effects = live

	// Add some new effects, maybe
	if len(m.effects) >= maxEffects || m.stations.Len() == 0 {
		return
	}

	roll := m.rng.Float64()

	if roll < 0.001 {
		m.effects = append(m.effects, NewStationBlink(m.stations, m.rng))
	}

	if roll < 0.15 {
		if train := NewTrain(m.stations, m.connections, m.popularity, m.arrivals, m.rng); train != nil {
			m.effects = append(m.effects, train)
		}
	}
}

// Len returns the number of live effects.
func (m *Manager) Len() int {
	return len(m.effects)
}

// Overlay flattens all effects into a tile -> color map for the current
// frame. Lower priority effects are processed first so higher priority ones
// overwrite them on contested tiles.
func (m *Manager) Overlay(frame *geo.MapFrame) map[tile.Tile][3]uint8 {
	sort.SliceStable(m.effects, func(i, j int) bool {
		return m.effects[i].Priority() < m.effects[j].Priority()
	})

	overlay := make(map[tile.Tile][3]uint8)
	for _, effect := range m.effects {
		for _, tc := range effect.Colors(frame) {
			overlay[tc.Tile] = tc.Color
		}
	}
	return overlay
}
