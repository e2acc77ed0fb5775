package content

import (
	"slices"

	"github.com/Gaurav-Gosain/folios/internal/wm"
)

// Window titles known to the desktop.
const (
	TitleProjects  = "Projects.exe"
	TitleSkills    = "Skills.dll"
	TitleResume    = "Resume.pdf"
	TitleContact   = "Contact.bat"
	TitleEasterEgg = "Easter Egg"
	TitleHelp      = "Help.txt"
)

// Entry describes a window that can be opened by title.
type Entry struct {
	Title  string
	Label  string // shown under the desktop icon and in the start menu
	Width  int
	Height int
	// Hidden entries have no icon or menu item and are only reachable
	// through a key sequence.
	Hidden bool
	Build  wm.ContentBuilder
}

// Catalog is the ordered set of openable windows for one session.
type Catalog struct {
	entries []Entry
}

// NewCatalog returns a catalog with the static documents of p. Interactive
// windows are added by the caller.
func NewCatalog(p *Profile, cache *Cache) *Catalog {
	c := &Catalog{}
	c.Add(Entry{
		Title: TitleProjects, Label: "Projects", Width: 72, Height: 24,
		Build: func() wm.Content { return NewDocument(TitleProjects, cache, p.RenderProjects) },
	})
	c.Add(Entry{
		Title: TitleSkills, Label: "Skills", Width: 52, Height: 20,
		Build: func() wm.Content { return NewDocument(TitleSkills, cache, p.RenderSkills) },
	})
	c.Add(Entry{
		Title: TitleResume, Label: "Resume", Width: 76, Height: 24,
		Build: func() wm.Content { return NewDocument(TitleResume, cache, p.RenderResume) },
	})
	c.Add(Entry{
		Title: TitleEasterEgg, Label: "Secret", Width: 44, Height: 12, Hidden: true,
		Build: func() wm.Content { return NewDocument(TitleEasterEgg, cache, p.RenderEasterEgg) },
	})
	return c
}

// Add appends e, replacing any entry with the same title in place.
func (c *Catalog) Add(e Entry) {
	if i := c.index(e.Title); i >= 0 {
		c.entries[i] = e
		return
	}
	c.entries = append(c.entries, e)
}

// Lookup returns the entry for title.
func (c *Catalog) Lookup(title string) (Entry, bool) {
	if i := c.index(title); i >= 0 {
		return c.entries[i], true
	}
	return Entry{}, false
}

// Visible returns the entries shown as desktop icons and menu items.
func (c *Catalog) Visible() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) index(title string) int {
	return slices.IndexFunc(c.entries, func(e Entry) bool { return e.Title == title })
}

// Document is static window content rendered through the shared cache.
type Document struct {
	id     string
	cache  *Cache
	render func(width int) string
}

// NewDocument wraps render so repeated frames at the same width reuse the
// previous output.
func NewDocument(id string, cache *Cache, render func(width int) string) *Document {
	return &Document{id: id, cache: cache, render: render}
}

// Render implements wm.Content. The result may be taller than height; the
// desktop scrolls it.
func (d *Document) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	return d.cache.Get(d.id, width, d.render)
}
