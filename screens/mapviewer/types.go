package mapviewer

import (
	"time"

	"sprawl/pkg/effects"
	"sprawl/pkg/geo"
	"sprawl/pkg/gradient"
	"sprawl/pkg/performance"
	"sprawl/pkg/stations"
	"sprawl/pkg/tile"
	"sprawl/ui"

	"github.com/veandco/go-sdl2/sdl"
)

// One simulation step. Effects advance at this fixed rate no matter how fast
// the render loop runs.
const simulationStep = 16666 * time.Microsecond

// maxStepsPerFrame caps how many simulation steps a single frame may run.
// After a long stall (window drag, suspend) we drop time instead of fast
// forwarding through it.
const maxStepsPerFrame = 5

// tileKind classifies what occupies a base map tile.
type tileKind uint8

const (
	kindTrack tileKind = iota
	kindStationShadow
	kindStation
)

// tileStatus is the base map entry for one tile. Station and shadow tiles
// remember which station they belong to so clicks can be resolved.
type tileStatus struct {
	kind    tileKind
	station stations.ID
}

// Fixed colors of the base map.
var (
	backgroundColor = gradient.Color{R: 0x32, G: 0x2f, B: 0x3d}
	trackColor      = gradient.Color{R: 0x4f, G: 0x61, B: 0x6b}
	stationColor    = gradient.Color{R: 0xc4, G: 0x9d, B: 0xcf}

	// Shadow tiles sit between the station center and the background.
	stationShadowColor = gradient.Lerp(backgroundColor, stationColor, 0.5)
)

// Label palette endpoints. Each station is assigned one of the three ramps
// by ID unless the user picked an override.
var paletteEnds = [3]gradient.Color{
	{R: 0xf8, G: 0xff, B: 0x7a}, // amber
	{R: 0x74, G: 0xfc, B: 0x98}, // spring
	{R: 0x30, G: 0x9d, B: 0xfc}, // azure
}

// paletteNames index-matches paletteEnds; shown on the overlay cards.
var paletteNames = [3]string{"Amber", "Spring", "Azure"}

// Screen is the map world: the rail network, the current view onto it, the
// animated effects and the pixel buffer everything is composed into.
type Screen struct {
	stations    *stations.List
	connections stations.Connections

	frame   geo.MapFrame
	manager *effects.Manager

	// Base map for the current frame, keyed by global tile coordinates.
	// Rebuilt on every zoom or pan.
	baseMap map[tile.Tile]tileStatus
	labels  map[tile.Tile]stations.ID

	// RGB24 pixel buffer, geo.ScreenWidth x geo.ScreenHeight, streamed into
	// the texture each frame.
	pixels  []byte
	texture *sdl.Texture

	fonts *ui.Fonts

	paletteOverride int
	showLabels      bool
	effectsEnabled  bool

	accumulator time.Duration
	lastTick    time.Time

	monitor       *performance.FrameMonitor
	lastPerfLog   time.Time
	lastMemoryLog time.Time
}
