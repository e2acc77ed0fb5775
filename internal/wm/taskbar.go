package wm

// Chip is a taskbar entry for one open window.
type Chip struct {
	Handle Handle
	Title  string
	Icon   string
	Active bool
}

// Icons maps window titles to taskbar icons. Titles without an entry use
// Default.
type Icons struct {
	Table   map[string]string
	Default string
}

// Lookup returns the icon for title.
func (i Icons) Lookup(title string) string {
	if icon, ok := i.Table[title]; ok {
		return icon
	}
	return i.Default
}

// taskbar keeps chips in the order their windows were opened.
type taskbar struct {
	chips []*Chip
}

func (t *taskbar) append(c *Chip) {
	t.chips = append(t.chips, c)
}

// remove drops the chip for h and reports whether one was present.
func (t *taskbar) remove(h Handle) bool {
	for i, c := range t.chips {
		if c.Handle == h {
			t.chips = append(t.chips[:i], t.chips[i+1:]...)
			return true
		}
	}
	return false
}

func (t *taskbar) find(h Handle) *Chip {
	for _, c := range t.chips {
		if c.Handle == h {
			return c
		}
	}
	return nil
}

// setActive marks the chip for h active and clears every other chip. An empty
// handle clears them all.
func (t *taskbar) setActive(h Handle) {
	for _, c := range t.chips {
		c.Active = h != "" && c.Handle == h
	}
}

func (t *taskbar) active() (Handle, bool) {
	for _, c := range t.chips {
		if c.Active {
			return c.Handle, true
		}
	}
	return "", false
}
