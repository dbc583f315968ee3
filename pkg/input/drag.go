package input

// DragTracker turns per-frame mouse state into pan deltas. While the button
// is held it reports how far the cursor moved since the previous poll.
type DragTracker struct {
	dragging bool
	lastX    int32
	lastY    int32
}

// NewDragTracker creates a new DragTracker
func NewDragTracker() DragTracker {
	return DragTracker{}
}

// Update feeds the current cursor position and button state into the
// tracker. It returns the drag delta since the last call, which is zero on
// the frame the drag starts or when no button is held.
func (dt *DragTracker) Update(x, y int32, held bool) (dx, dy int32) {
	if !held {
		dt.dragging = false
		return 0, 0
	}

	if !dt.dragging {
		// Drag just started; establish the anchor without moving the map
		dt.dragging = true
		dt.lastX, dt.lastY = x, y
		return 0, 0
	}

	dx, dy = x-dt.lastX, y-dt.lastY
	dt.lastX, dt.lastY = x, y
	return dx, dy
}

// Dragging reports whether a drag is currently in progress.
func (dt *DragTracker) Dragging() bool {
	return dt.dragging
}
