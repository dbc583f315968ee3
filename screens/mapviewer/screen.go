// Package mapviewer renders the rail network of Japan as a scaled-up pixel
// map with animated traffic, and owns the overlay UI on top of it.
package mapviewer

import (
	"log"
	"time"
	"unsafe"

	"sprawl/pkg/effects"
	"sprawl/pkg/geo"
	"sprawl/pkg/gradient"
	"sprawl/pkg/performance"
	appsettings "sprawl/pkg/settings"
	"sprawl/pkg/stations"
	"sprawl/pkg/tile"

	"github.com/veandco/go-sdl2/sdl"
)

// palettes holds the three label ramps, all starting from the shared dark
// base color.
var palettes = [3][gradient.RampSteps]gradient.Color{
	gradient.Ramp(paletteEnds[0]),
	gradient.Ramp(paletteEnds[1]),
	gradient.Ramp(paletteEnds[2]),
}

// NewScreen creates the map world with the default frame over Japan and
// builds the initial base map.
func NewScreen(list *stations.List, connections stations.Connections, prefs appsettings.Settings) *Screen {
	s := &Screen{
		stations:        list,
		connections:     connections,
		frame:           geo.DefaultFrame(),
		manager:         effects.NewManager(list, connections),
		pixels:          make([]byte, geo.ScreenWidth*geo.ScreenHeight*3),
		paletteOverride: prefs.PaletteOverride,
		showLabels:      prefs.ShowLabels,
		effectsEnabled:  prefs.EffectsEnabled,
		monitor:         performance.NewFrameMonitor(120), // 2 seconds at 60fps
	}

	s.rebuildBaseMap()
	return s
}

// Close releases the effect manager and GPU resources.
func (s *Screen) Close() {
	s.manager.Close()
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
}

// Update advances the simulation by however much wall time has passed, in
// fixed steps so effect speeds are independent of the frame rate.
func (s *Screen) Update() {
	start := time.Now()

	if s.lastTick.IsZero() {
		s.lastTick = start
	}
	s.accumulator += start.Sub(s.lastTick)
	s.lastTick = start

	steps := 0
	for s.accumulator >= simulationStep && steps < maxStepsPerFrame {
		if s.effectsEnabled {
			s.manager.Update()
		}
		s.accumulator -= simulationStep
		steps++
	}
	if steps == maxStepsPerFrame {
		// Stalled for too long; drop the backlog rather than fast-forward
		s.accumulator = 0
	}

	s.monitor.RecordUpdate(time.Since(start))
	s.logPerformanceMetrics()
}

// Zoom scales the frame toward the given cell. scrollDiff is the raw scroll
// amount; its sign picks the direction. Zooms that would leave the allowed
// range are ignored.
func (s *Screen) Zoom(cellX, cellY int32, scrollDiff float64) {
	ratio := geo.Degree(geo.ZoomRatio(scrollDiff))

	newWidth := s.frame.Width() * ratio
	if newWidth < geo.MinZoom || newWidth > geo.MaxZoom {
		return
	}
	newHeight := s.frame.Height() * ratio

	// Keep the map coordinate under the cursor fixed so the zoom centers
	// on where the user is pointing.
	anchor := s.frame.GetMapCoord(cellX, cellY)
	fracX := geo.Degree(float64(cellX) / geo.ScreenWidth)
	fracY := geo.Degree(float64(cellY) / geo.ScreenHeight)

	s.frame.UpperLeft.Long = anchor.Long - newWidth*fracX
	s.frame.UpperLeft.Lat = anchor.Lat + newHeight*fracY
	s.frame.LowerRight.Long = s.frame.UpperLeft.Long + newWidth
	s.frame.LowerRight.Lat = s.frame.UpperLeft.Lat - newHeight

	s.rebuildBaseMap()
}

// Pan moves the frame by the given cell deltas, dragging the map content
// along with the cursor.
func (s *Screen) Pan(dxCells, dyCells float64) {
	if dxCells == 0 && dyCells == 0 {
		return
	}

	degPerCellX, degPerCellY := s.frame.DegreesPerPixel()
	longShift := degPerCellX * geo.Degree(dxCells)
	latShift := degPerCellY * geo.Degree(dyCells)

	// Dragging right moves the content right, so the frame moves left
	s.frame.UpperLeft.Long -= longShift
	s.frame.LowerRight.Long -= longShift
	s.frame.UpperLeft.Lat += latShift
	s.frame.LowerRight.Lat += latShift

	s.rebuildBaseMap()
}

// Inspect resolves a click on the given cell to the station drawn there, if
// any.
func (s *Screen) Inspect(cellX, cellY int32) (*stations.Station, bool) {
	t := s.frame.GetTile(s.frame.GetMapCoord(cellX, cellY))

	status, ok := s.baseMap[t]
	if !ok || status.kind == kindTrack {
		return nil, false
	}

	station, ok := s.stations.Get(status.station)
	if !ok {
		return nil, false
	}

	log.Printf("Inspect: %s", station)
	return station, true
}

// SetShowLabels toggles the station label layer.
func (s *Screen) SetShowLabels(show bool) {
	s.showLabels = show
}

// SetEffectsEnabled toggles trains and blinks. Existing effects freeze in
// place until re-enabled.
func (s *Screen) SetEffectsEnabled(enabled bool) {
	s.effectsEnabled = enabled
}

// SetPaletteOverride forces one label ramp for every station; -1 restores
// the per-station assignment.
func (s *Screen) SetPaletteOverride(idx int) {
	if idx < -1 || idx >= len(palettes) {
		return
	}
	s.paletteOverride = idx
}

// PaletteOverride returns the current override, -1 when per-station.
func (s *Screen) PaletteOverride() int {
	return s.paletteOverride
}

// Draw composes the current frame into the pixel buffer and copies it to
// the window, scaled up with the aspect ratio preserved.
func (s *Screen) Draw(renderer *sdl.Renderer, winW, winH int32) error {
	start := time.Now()

	var overlay map[tile.Tile][3]uint8
	if s.effectsEnabled {
		overlay = s.manager.Overlay(&s.frame)
	}
	s.compose(overlay)

	if s.texture == nil {
		texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING, geo.ScreenWidth, geo.ScreenHeight)
		if err != nil {
			return err
		}
		s.texture = texture
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), geo.ScreenWidth*3); err != nil {
		return err
	}

	dst := viewportRect(winW, winH)
	if err := renderer.Copy(s.texture, nil, &dst); err != nil {
		return err
	}

	s.monitor.RecordDraw(time.Since(start))
	return nil
}

// compose flattens the base map, label layer and effect overlay into the
// RGB pixel buffer. Effects beat everything; label glyphs only color tiles
// the base map left empty, so stations and tracks stay legible underneath.
func (s *Screen) compose(overlay map[tile.Tile][3]uint8) {
	upperLeft := s.frame.GetTile(s.frame.UpperLeft)
	fontLevel := s.frame.FontLevel()

	idx := 0
	for y := int32(0); y < geo.ScreenHeight; y++ {
		for x := int32(0); x < geo.ScreenWidth; x++ {
			t := tile.Tile{X: upperLeft.X + tile.Pos(x), Y: upperLeft.Y + tile.Pos(y)}

			color := backgroundColor
			if status, ok := s.baseMap[t]; ok {
				switch status.kind {
				case kindStation:
					color = stationColor
				case kindStationShadow:
					color = stationShadowColor
				case kindTrack:
					color = trackColor
				}
			} else if s.showLabels {
				if id, ok := s.labels[t]; ok {
					color = s.labelColor(id, fontLevel)
				}
			}

			if overlay != nil {
				if rgb, ok := overlay[t]; ok {
					color = gradient.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
				}
			}

			s.pixels[idx] = color.R
			s.pixels[idx+1] = color.G
			s.pixels[idx+2] = color.B
			idx += 3
		}
	}
}

// labelColor picks the ramp shade for a station label at the current zoom.
func (s *Screen) labelColor(id stations.ID, fontLevel int) gradient.Color {
	paletteIdx := int(id) % len(palettes)
	if s.paletteOverride >= 0 && s.paletteOverride < len(palettes) {
		paletteIdx = s.paletteOverride
	}
	return palettes[paletteIdx][fontLevel]
}

// rebuildBaseMap recomputes which tiles hold stations, tracks and labels
// for the current frame. Called after every zoom or pan.
func (s *Screen) rebuildBaseMap() {
	s.baseMap = make(map[tile.Tile]tileStatus)
	s.labels = make(map[tile.Tile]stations.ID)

	stationWidth := s.frame.StationWidth()
	trackWidth := s.frame.TrackWidth()

	// Stations first so they win contested tiles against tracks
	for _, station := range s.stations.All() {
		if !s.frame.IsVisible(station.Coord) {
			continue
		}

		center := s.frame.GetTile(station.Coord)
		box := tile.Box(center, stationWidth)
		for t, ok := box.Next(); ok; t, ok = box.Next() {
			kind := kindStationShadow
			if t == center {
				kind = kindStation
			}
			if existing, taken := s.baseMap[t]; taken && existing.kind >= kind {
				continue
			}
			s.baseMap[t] = tileStatus{kind: kind, station: station.ID}
		}
	}

	// Tracks only claim tiles nothing else wants
	for a, neighbors := range s.connections {
		from, ok := s.stations.Get(a)
		if !ok {
			continue
		}

		for b := range neighbors {
			// Connections are stored in both directions; draw each once
			if b <= a {
				continue
			}
			to, ok := s.stations.Get(b)
			if !ok {
				continue
			}
			if !s.frame.IsVisible(from.Coord) && !s.frame.IsVisible(to.Coord) {
				continue
			}

			fromTile := s.frame.GetTile(from.Coord)
			toTile := s.frame.GetTile(to.Coord)
			for _, lineTile := range tile.Supercover(fromTile, toTile) {
				box := tile.Box(lineTile, trackWidth)
				for t, ok := box.Next(); ok; t, ok = box.Next() {
					if _, taken := s.baseMap[t]; taken {
						continue
					}
					s.baseMap[t] = tileStatus{kind: kindTrack}
				}
			}
		}
	}

	s.rebuildLabels(stationWidth)
}

// viewportRect fits the pixel buffer into the window, centered, with the
// 4:3 aspect ratio preserved.
func viewportRect(winW, winH int32) sdl.Rect {
	scaleW := float64(winW) / float64(geo.ScreenWidth)
	scaleH := float64(winH) / float64(geo.ScreenHeight)

	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	w := int32(float64(geo.ScreenWidth) * scale)
	h := int32(float64(geo.ScreenHeight) * scale)

	return sdl.Rect{X: (winW - w) / 2, Y: (winH - h) / 2, W: w, H: h}
}

// windowToCell converts a window pixel position to a buffer cell, reporting
// false for clicks on the letterbox bars.
func (s *Screen) windowToCell(x, y, winW, winH int32) (int32, int32, bool) {
	dst := viewportRect(winW, winH)
	if x < dst.X || x >= dst.X+dst.W || y < dst.Y || y >= dst.Y+dst.H {
		return 0, 0, false
	}

	cellX := (x - dst.X) * geo.ScreenWidth / dst.W
	cellY := (y - dst.Y) * geo.ScreenHeight / dst.H
	return cellX, cellY, true
}

// cellsPerWindowPixel returns how many buffer cells one window pixel spans,
// used to convert drag deltas.
func cellsPerWindowPixel(winW, winH int32) float64 {
	dst := viewportRect(winW, winH)
	if dst.W == 0 {
		return 0
	}
	return float64(geo.ScreenWidth) / float64(dst.W)
}

// logPerformanceMetrics logs frame and memory stats periodically
func (s *Screen) logPerformanceMetrics() {
	now := time.Now()

	if now.Sub(s.lastPerfLog) >= 5*time.Second {
		report := s.monitor.GetReport()

		healthStatus := "OK"
		if !report.IsHealthy {
			healthStatus = "DEGRADED"
		}

		log.Printf("Performance[%s]: Update=%.2fms Draw=%.2fms Total=%.2fms FPS=%.1f Effects=%d Frames=%d Uptime=%ds",
			healthStatus,
			report.AvgUpdateMs,
			report.AvgDrawMs,
			report.AvgTotalMs,
			report.EffectiveFPS,
			s.manager.Len(),
			report.TotalFrames,
			report.UptimeSeconds)

		s.lastPerfLog = now
	}

	if now.Sub(s.lastMemoryLog) >= 10*time.Second {
		performance.LogMemorySnapshot()
		s.lastMemoryLog = now
	}
}

// RecordTotalFrameTime feeds the whole-frame duration into the monitor.
func (s *Screen) RecordTotalFrameTime(d time.Duration) {
	s.monitor.RecordTotalFrameTime(d)
}
