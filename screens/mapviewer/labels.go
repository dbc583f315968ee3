package mapviewer

import (
	"log"

	"sprawl/pkg/tile"
	"sprawl/ui"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Labels only appear once the frame is zoomed in this far.
const labelMaxFrameHeight = 0.5

// SetFonts provides the fonts used to rasterize station labels. Without
// fonts the map still works, just unlabeled.
func (s *Screen) SetFonts(fonts *ui.Fonts) {
	s.fonts = fonts
	s.rebuildBaseMap()
}

// rebuildLabels rasterizes the names of all visible stations into label
// tiles, placed above each station box.
func (s *Screen) rebuildLabels(stationWidth int32) {
	if s.fonts == nil || s.frame.Height() >= labelMaxFrameHeight {
		return
	}

	// Grow the glyphs a little as the zoom level rises
	px := 6 + s.frame.FontLevel()

	font, err := s.fonts.Sized(px)
	if err != nil {
		log.Printf("Warning: no %dpx label font: %v", px, err)
		return
	}

	for _, station := range s.stations.All() {
		if !s.frame.IsVisible(station.Coord) {
			continue
		}

		mask, w, h, err := glyphMask(font, station.Name)
		if err != nil {
			log.Printf("Warning: failed to rasterize label %q: %v", station.Name, err)
			continue
		}

		center := s.frame.GetTile(station.Coord)
		origin := tile.Tile{
			X: center.X - tile.Pos(w/2),
			Y: center.Y - tile.Pos(stationWidth) - tile.Pos(h),
		}

		// Glyphs only claim tiles no station or track already holds
		for _, t := range maskToTiles(mask, w, h, origin) {
			if _, taken := s.baseMap[t]; taken {
				continue
			}
			s.labels[t] = station.ID
		}
	}
}

// glyphMask renders text into a coverage bitmap, one bool per pixel in
// row-major order.
func glyphMask(font *ttf.Font, text string) ([]bool, int, int, error) {
	surface, err := font.RenderUTF8Solid(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	w := int(surface.W)
	h := int(surface.H)
	pitch := int(surface.Pitch)
	pixels := surface.Pixels()

	// Solid rendering gives a palettized 8-bit surface where index 0 is
	// transparent
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		row := pixels[y*pitch:]
		for x := 0; x < w; x++ {
			mask[y*w+x] = row[x] != 0
		}
	}

	return mask, w, h, nil
}

// maskToTiles maps a coverage bitmap onto the tile grid starting at origin.
func maskToTiles(mask []bool, w, h int, origin tile.Tile) []tile.Tile {
	var tiles []tile.Tile
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask[y*w+x] {
				continue
			}
			tiles = append(tiles, tile.Tile{
				X: origin.X + tile.Pos(x),
				Y: origin.Y + tile.Pos(y),
			})
		}
	}
	return tiles
}
