// Package input turns SDL's polled keyboard and mouse state into discrete
// actions: edge-detected presses and drag deltas for panning the map.
package input

import "github.com/veandco/go-sdl2/sdl"

// KeyPressTracker edge-detects keys out of the polled keyboard state, so a
// held arrow key moves a menu selection once instead of every frame.
type KeyPressTracker struct {
	down map[sdl.Scancode]bool
}

// NewKeyPressTracker creates an empty tracker; every key starts released.
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		down: make(map[sdl.Scancode]bool),
	}
}

// IsPressed reports whether the key went down since the previous poll.
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, scancode sdl.Scancode) bool {
	down := keyState[scancode] != 0
	was := kpt.down[scancode]
	kpt.down[scancode] = down

	return down && !was
}

// MousePressTracker is the same edge detection for mouse buttons, keyed by
// SDL button mask (e.g. sdl.ButtonLMask()).
type MousePressTracker struct {
	down map[uint32]bool
}

// NewMousePressTracker creates an empty tracker.
func NewMousePressTracker() MousePressTracker {
	return MousePressTracker{
		down: make(map[uint32]bool),
	}
}

// IsPressed reports whether the button went down since the previous poll.
func (mpt *MousePressTracker) IsPressed(mouseState uint32, buttonMask uint32) bool {
	down := mouseState&buttonMask != 0
	was := mpt.down[buttonMask]
	mpt.down[buttonMask] = down

	return down && !was
}
