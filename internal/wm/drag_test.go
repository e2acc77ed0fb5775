package wm

import "testing"

func TestDragMovesByDelta(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
	}{
		{"right and down", 7, 3},
		{"left and up", -12, -4},
		{"horizontal only", 25, 0},
		{"off screen", -500, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			h := m.Open("Projects.exe", nil, 70, 24)
			before, _ := m.Window(h)

			startX, startY := before.Bounds.X+2, before.Bounds.Y
			if !m.BeginDrag(h, startX, startY) {
				t.Fatal("BeginDrag failed")
			}
			// Move in two hops to exercise relative deltas.
			m.DragTo(startX+tt.dx/2, startY+tt.dy/2)
			m.DragTo(startX+tt.dx, startY+tt.dy)
			m.EndDrag()

			after, _ := m.Window(h)
			if after.Bounds.X-before.Bounds.X != tt.dx || after.Bounds.Y-before.Bounds.Y != tt.dy {
				t.Errorf("moved by (%d,%d), want (%d,%d)",
					after.Bounds.X-before.Bounds.X, after.Bounds.Y-before.Bounds.Y, tt.dx, tt.dy)
			}
		})
	}
}

func TestDragReleaseStopsMovement(t *testing.T) {
	m := newTestManager()
	h := m.Open("Skills.dll", nil, 50, 20)
	m.BeginDrag(h, 20, 5)
	m.DragTo(25, 6)
	m.EndDrag()
	released, _ := m.Window(h)

	if m.DragTo(60, 30) {
		t.Error("DragTo after release reported movement")
	}
	after, _ := m.Window(h)
	if after.Bounds != released.Bounds {
		t.Errorf("panel moved after release: %+v -> %+v", released.Bounds, after.Bounds)
	}
	if m.Drag().State() != Idle {
		t.Errorf("drag state = %v, want idle", m.Drag().State())
	}
}

func TestDragSurvivesPanelMovingBetweenEvents(t *testing.T) {
	m := newTestManager()
	h := m.Open("Skills.dll", nil, 50, 20)
	m.BeginDrag(h, 20, 5)
	m.entries[h].panel.Bounds.X += 30

	m.DragTo(22, 5)
	w, _ := m.Window(h)
	before := m.origin.X + (10%3)*m.cascade.X
	if w.Bounds.X != before+30+2 {
		t.Errorf("X = %d, want %d", w.Bounds.X, before+32)
	}
}

func TestSingleDrag(t *testing.T) {
	m := newTestManager()
	a := m.Open("a", nil, 20, 10)
	b := m.Open("b", nil, 20, 10)

	if !m.BeginDrag(a, 1, 1) {
		t.Fatal("first drag refused")
	}
	if m.BeginDrag(b, 1, 1) {
		t.Error("second concurrent drag accepted")
	}
	if m.Drag().Handle() != a {
		t.Errorf("dragging %s, want %s", m.Drag().Handle(), a)
	}
}

func TestDragRefusedForMaximizedAndUnknown(t *testing.T) {
	m := newTestManager()
	h := m.Open("Resume.pdf", nil, 80, 24)
	m.Maximize(h)
	if m.BeginDrag(h, 0, 0) {
		t.Error("maximized window started a drag")
	}
	if m.BeginDrag("missing", 0, 0) {
		t.Error("unknown window started a drag")
	}
}

func TestCloseDuringDragReleases(t *testing.T) {
	m := newTestManager()
	h := m.Open("a", nil, 20, 10)
	m.BeginDrag(h, 0, 0)
	m.Close(h)
	if m.Drag().State() != Idle {
		t.Error("closing the dragged window should end the drag")
	}
	if m.DragTo(5, 5) {
		t.Error("moved a closed window")
	}
}

func TestHitTest(t *testing.T) {
	m := newTestManager()
	back := m.Open("back", nil, 40, 12)
	front := m.Open("front", nil, 40, 12)
	bw, _ := m.Window(back)
	fw, _ := m.Window(front)

	t.Run("topmost wins", func(t *testing.T) {
		// Both cascade from the same origin, so pick a cell inside both.
		x, y := fw.Bounds.X+1, fw.Bounds.Y+2
		if !bw.Bounds.Contains(x, y) {
			t.Skip("windows do not overlap at probe point")
		}
		hit, ok := m.HitTest(x, y)
		if !ok || hit.Handle != front || hit.Region != RegionBody {
			t.Errorf("hit = %+v, want body of front", hit)
		}
	})

	t.Run("header", func(t *testing.T) {
		hit, ok := m.HitTest(fw.Bounds.X+1, fw.Bounds.Y)
		if !ok || hit.Region != RegionHeader {
			t.Errorf("hit = %+v, want header", hit)
		}
	})

	t.Run("controls", func(t *testing.T) {
		for _, c := range Controls {
			r := ControlRect(fw.Frame, c)
			hit, ok := m.HitTest(r.X+1, r.Y)
			if !ok || hit.Region != RegionControl || hit.Control != c {
				t.Errorf("hit = %+v, want control %v", hit, c)
			}
		}
	})

	t.Run("minimized is skipped", func(t *testing.T) {
		m.Minimize(front)
		hit, ok := m.HitTest(fw.Bounds.X+1, fw.Bounds.Y+2)
		if !ok || hit.Handle != back {
			t.Errorf("hit = %+v, want back", hit)
		}
		m.Restore(front)
	})

	t.Run("miss", func(t *testing.T) {
		if _, ok := m.HitTest(-100, -100); ok {
			t.Error("hit outside every window")
		}
	})
}

func TestControlLayout(t *testing.T) {
	frame := Rect{X: 10, Y: 4, Width: 40, Height: 12}
	right := frame.X + frame.Width

	tests := []struct {
		x    int
		want Control
	}{
		{right - 11, ControlMinimize},
		{right - 9, ControlMinimize},
		{right - 8, ControlMaximize},
		{right - 6, ControlMaximize},
		{right - 5, ControlClose},
		{right - 3, ControlClose},
		{right - 2, ControlNone},
		{right - 12, ControlNone},
	}
	for _, tt := range tests {
		if got := ControlAt(frame, tt.x, frame.Y); got != tt.want {
			t.Errorf("ControlAt(x=%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := ControlAt(frame, right-4, frame.Y+1); got != ControlNone {
		t.Errorf("control below header: %v", got)
	}
}

func TestControlsHiddenOnNarrowFrame(t *testing.T) {
	tests := []struct {
		width int
		shown bool
	}{
		{9, false},
		{11, false},
		{14, false},
		{15, true},
		{40, true},
	}
	for _, tt := range tests {
		frame := Rect{X: 3, Y: 2, Width: tt.width, Height: 6}
		r := ControlRect(frame, ControlMinimize)
		if (r.Width > 0) != tt.shown {
			t.Errorf("width %d: minimize rect %+v, shown want %v", tt.width, r, tt.shown)
		}
		if r.Width > 0 && r.X-frame.X < minHeaderLead {
			t.Errorf("width %d: controls start at %d, inside the header lead", tt.width, r.X)
		}
		if !tt.shown {
			for x := frame.X; x < frame.X+frame.Width; x++ {
				if c := ControlAt(frame, x, frame.Y); c != ControlNone {
					t.Errorf("width %d: hidden control %v at x=%d", tt.width, c, x)
				}
			}
		}
	}

	m := New(Options{WorkArea: Rect{Width: 9, Height: 19}})
	h := m.Open("narrow", nil, 9, 19)
	w, _ := m.Window(h)
	hit, ok := m.HitTest(w.Frame.X, w.Frame.Y)
	if !ok || hit.Region != RegionHeader {
		t.Fatalf("hit = %+v, want header", hit)
	}
	if !m.BeginDrag(h, w.Frame.X, w.Frame.Y) {
		t.Error("narrow header cannot start a drag")
	}
}
