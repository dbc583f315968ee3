package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyPressTrackerEdgeDetection(t *testing.T) {
	t.Parallel()

	tracker := NewKeyPressTracker()
	keyState := make([]uint8, sdl.NUM_SCANCODES)

	// Not pressed yet
	assert.False(t, tracker.IsPressed(keyState, sdl.SCANCODE_DOWN))

	// First frame pressed fires once
	keyState[sdl.SCANCODE_DOWN] = 1
	assert.True(t, tracker.IsPressed(keyState, sdl.SCANCODE_DOWN))

	// Held keys don't re-fire
	assert.False(t, tracker.IsPressed(keyState, sdl.SCANCODE_DOWN))

	// Release and press again fires again
	keyState[sdl.SCANCODE_DOWN] = 0
	assert.False(t, tracker.IsPressed(keyState, sdl.SCANCODE_DOWN))
	keyState[sdl.SCANCODE_DOWN] = 1
	assert.True(t, tracker.IsPressed(keyState, sdl.SCANCODE_DOWN))
}

func TestMousePressTrackerEdgeDetection(t *testing.T) {
	t.Parallel()

	tracker := NewMousePressTracker()
	mask := sdl.ButtonLMask()

	assert.False(t, tracker.IsPressed(0, mask))
	assert.True(t, tracker.IsPressed(mask, mask))
	assert.False(t, tracker.IsPressed(mask, mask))
	assert.False(t, tracker.IsPressed(0, mask))
	assert.True(t, tracker.IsPressed(mask, mask))
}

func TestDragTracker(t *testing.T) {
	t.Parallel()

	tracker := NewDragTracker()

	// No button held, no delta
	dx, dy := tracker.Update(10, 10, false)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, tracker.Dragging())

	// Drag start anchors without a delta
	dx, dy = tracker.Update(10, 10, true)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.True(t, tracker.Dragging())

	// Movement while held reports the delta since last poll
	dx, dy = tracker.Update(15, 7, true)
	assert.Equal(t, int32(5), dx)
	assert.Equal(t, int32(-3), dy)

	// Release ends the drag
	dx, dy = tracker.Update(100, 100, false)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, tracker.Dragging())

	// A new drag re-anchors instead of jumping
	dx, dy = tracker.Update(50, 50, true)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
