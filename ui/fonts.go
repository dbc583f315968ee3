package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// Fonts manages the TrueType fonts used for station labels and the overlay.
// Station names are Japanese, so CJK-capable fonts are tried first.
type Fonts struct {
	Large  *ttf.Font // 32px for overlay card titles
	Medium *ttf.Font // 24px for tab titles
	Small  *ttf.Font // 18px for descriptions

	path  string            // font file that successfully opened
	sized map[int]*ttf.Font // label fonts cached by pixel size
}

// LoadFonts loads system fonts with fallbacks for different platforms
func LoadFonts() (*Fonts, error) {
	// Initialize TTF
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %v", err)
	}

	fontPaths := []string{
		"assets/fonts/Kosugi-Regular.ttf",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
		"/System/Library/Fonts/Hiragino Sans GB.ttc",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
	}

	fonts := &Fonts{sized: make(map[int]*ttf.Font)}

	for _, path := range fontPaths {
		large, err := ttf.OpenFont(path, 32)
		if err != nil {
			continue
		}
		fonts.Large = large
		fonts.path = path
		break
	}
	if fonts.path == "" {
		return nil, fmt.Errorf("no usable font found")
	}

	var err error
	fonts.Medium, err = ttf.OpenFont(fonts.path, 24)
	if err != nil {
		return nil, err
	}
	fonts.Small, err = ttf.OpenFont(fonts.path, 18)
	if err != nil {
		return nil, err
	}

	return fonts, nil
}

// Sized returns a label font at the given pixel size, opening and caching
// it on first use. Label sizes change with the zoom level.
func (f *Fonts) Sized(px int) (*ttf.Font, error) {
	if px < 1 {
		px = 1
	}
	if font, ok := f.sized[px]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(f.path, px)
	if err != nil {
		return nil, err
	}
	f.sized[px] = font
	return font, nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	if f.Large != nil {
		f.Large.Close()
	}
	if f.Medium != nil {
		f.Medium.Close()
	}
	if f.Small != nil {
		f.Small.Close()
	}
	for _, font := range f.sized {
		font.Close()
	}
}
