package wallpaper

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRainKeepsHalfTheRows(t *testing.T) {
	r := New(20, 10, 1)
	for i := 0; i < 500; i++ {
		r.Step()
		for x, c := range r.cols {
			if len(c.trail) > 5 {
				t.Fatalf("step %d column %d trail %d exceeds half the rows", i, x, len(c.trail))
			}
			if c.pos > 10 {
				t.Fatalf("step %d column %d pos %d past the bottom", i, x, c.pos)
			}
		}
	}
}

func TestRainWrapsAtBottom(t *testing.T) {
	r := New(1, 4, 7)
	r.cols[0] = column{speed: 1}
	for i := 0; i < 4; i++ {
		r.Step()
	}
	if r.cols[0].pos != 4 {
		t.Fatalf("pos = %d, want 4", r.cols[0].pos)
	}
	r.Step()
	if r.cols[0].pos != 1 || len(r.cols[0].trail) != 1 {
		t.Errorf("after wrap pos=%d trail=%d, want 1 and 1", r.cols[0].pos, len(r.cols[0].trail))
	}
}

func TestRainDelayAndSpeed(t *testing.T) {
	r := New(1, 10, 3)
	r.cols[0] = column{delay: 2, speed: 2}
	r.Step()
	r.Step()
	if r.cols[0].pos != 0 {
		t.Fatal("column moved during its delay")
	}
	r.Step() // moves
	r.Step() // waits
	r.Step() // moves
	if r.cols[0].pos != 2 {
		t.Errorf("pos = %d, want 2 with speed 2", r.cols[0].pos)
	}
}

func TestRainGlyphs(t *testing.T) {
	r := New(30, 12, 42)
	for i := 0; i < 200; i++ {
		r.Step()
	}
	for _, ch := range r.Plain() {
		if ch == ' ' || ch == '\n' {
			continue
		}
		if !strings.ContainsRune(Glyphs, ch) {
			t.Fatalf("unexpected glyph %q", ch)
		}
	}
}

func TestRainAt(t *testing.T) {
	r := New(1, 6, 0)
	r.cols[0] = column{trail: []rune("ab"), pos: 4}
	want := []rune{' ', ' ', 'a', 'b', ' ', ' '}
	for y, w := range want {
		if got := r.At(0, y); got != w {
			t.Errorf("At(0,%d) = %q, want %q", y, got, w)
		}
	}
	if r.At(5, 0) != ' ' || r.At(0, -1) != ' ' {
		t.Error("out of range should be blank")
	}
}

func TestRainRenderSize(t *testing.T) {
	r := New(16, 5, 9)
	for i := 0; i < 50; i++ {
		r.Step()
	}
	out := r.Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 16 {
			t.Errorf("line %d width = %d, want 16", i, w)
		}
	}

	r.Resize(0, 0)
	if r.Render() != "" {
		t.Error("empty rain should render nothing")
	}
}
