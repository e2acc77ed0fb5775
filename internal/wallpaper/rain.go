// Package wallpaper draws the animated code rain behind the desktop.
package wallpaper

import (
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/folios/internal/pool"
	"github.com/Gaurav-Gosain/folios/internal/theme"
)

// Glyphs are the characters a column can drop.
const Glyphs = "01{}[]();<>/\\|&^%$#@!~`"

// DropChance is the probability that a step adds a glyph instead of a gap.
const DropChance = 0.3

type column struct {
	trail []rune
	pos   int // row the next glyph lands on
	delay int // steps before the column starts
	speed int // steps between moves
	wait  int
	faint bool
}

// Rain is one screen of falling columns. It is not safe for concurrent use;
// each desktop owns its own.
type Rain struct {
	width, height int
	cols          []column
	rng           *rand.Rand
	glyphs        []rune
}

// New creates a rain of width columns and height rows seeded with seed.
func New(width, height int, seed uint64) *Rain {
	r := &Rain{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		glyphs: []rune(Glyphs),
	}
	r.Resize(width, height)
	return r
}

// Resize rebuilds the columns for a new screen size. Existing trails are
// dropped.
func (r *Rain) Resize(width, height int) {
	r.width, r.height = max(width, 0), max(height, 0)
	r.cols = make([]column, r.width)
	for i := range r.cols {
		r.cols[i] = column{
			delay: r.rng.IntN(40),
			speed: 1 + r.rng.IntN(2),
			faint: r.rng.IntN(3) > 0,
		}
	}
}

// Step advances every column by one tick.
func (r *Rain) Step() {
	keep := r.height / 2
	for i := range r.cols {
		c := &r.cols[i]
		if c.delay > 0 {
			c.delay--
			continue
		}
		if c.wait > 0 {
			c.wait--
			continue
		}
		c.wait = c.speed - 1

		if c.pos >= r.height {
			c.pos = 0
			c.trail = c.trail[:0]
		}
		g := ' '
		if r.rng.Float64() < DropChance {
			g = r.glyphs[r.rng.IntN(len(r.glyphs))]
		}
		c.trail = append(c.trail, g)
		c.pos++
		if len(c.trail) > keep {
			c.trail = c.trail[1:]
		}
	}
}

// At returns the glyph shown at column x, row y, or a space.
func (r *Rain) At(x, y int) rune {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return ' '
	}
	c := &r.cols[x]
	// the newest glyph sits on row pos-1 with the trail above it
	idx := len(c.trail) - (c.pos - y)
	if y >= c.pos || idx < 0 {
		return ' '
	}
	return c.trail[idx]
}

// Render draws the rain as height lines of width cells.
func (r *Rain) Render() string {
	if r.width == 0 || r.height == 0 {
		return ""
	}
	bg := theme.DesktopBg()
	palette := [...]lipgloss.Style{
		styleBlank:  lipgloss.NewStyle().Background(bg),
		styleFaint:  lipgloss.NewStyle().Foreground(theme.RainFg()).Background(bg).Faint(true),
		styleBright: lipgloss.NewStyle().Foreground(theme.RainFg()).Background(bg),
		styleHead:   lipgloss.NewStyle().Foreground(theme.RainHead()).Background(bg).Bold(true),
	}

	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	row := make([]rune, r.width)
	for y := 0; y < r.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range row {
			row[x] = r.At(x, y)
		}
		// group runs of equal style to keep the escape sequences short
		start := 0
		for start < r.width {
			style := r.styleAt(start, y)
			end := start + 1
			for end < r.width && r.styleAt(end, y) == style {
				end++
			}
			sb.WriteString(palette[style].Render(string(row[start:end])))
			start = end
		}
	}
	return sb.String()
}

type cellStyle int

const (
	styleBlank cellStyle = iota
	styleFaint
	styleBright
	styleHead
)

func (r *Rain) styleAt(x, y int) cellStyle {
	c := &r.cols[x]
	switch {
	case r.At(x, y) == ' ':
		return styleBlank
	case y == c.pos-1:
		return styleHead
	case c.faint:
		return styleFaint
	}
	return styleBright
}

// Plain renders the rain without colour, used by tests and the ascii mode.
func (r *Rain) Plain() string {
	var sb strings.Builder
	for y := 0; y < r.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < r.width; x++ {
			sb.WriteRune(r.At(x, y))
		}
	}
	return sb.String()
}
