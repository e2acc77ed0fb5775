package wm

// DragState is the state of the pointer drag machine.
type DragState int

const (
	// Idle means no window is following the pointer.
	Idle DragState = iota
	// Dragging means a window header was pressed and the button is still down.
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Drag tracks a single header drag. Moves are applied as deltas from the last
// recorded pointer position, so the panel may change position between events
// without the pointer losing its grip.
type Drag struct {
	state  DragState
	handle Handle
	last   Point
}

// State returns the current drag state.
func (d Drag) State() DragState {
	return d.state
}

// Handle returns the window being dragged, or "" when idle.
func (d Drag) Handle() Handle {
	return d.handle
}

// press starts a drag at (x, y). It fails if a drag is already in progress.
func (d *Drag) press(h Handle, x, y int) bool {
	if d.state == Dragging {
		return false
	}
	d.state = Dragging
	d.handle = h
	d.last = Point{X: x, Y: y}
	return true
}

// move records the pointer at (x, y) and returns the delta since the last
// recorded position. ok is false when idle.
func (d *Drag) move(x, y int) (dx, dy int, ok bool) {
	if d.state != Dragging {
		return 0, 0, false
	}
	dx, dy = x-d.last.X, y-d.last.Y
	d.last = Point{X: x, Y: y}
	return dx, dy, true
}

func (d *Drag) release() {
	*d = Drag{}
}
