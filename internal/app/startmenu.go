package app

import (
	"unicode/utf8"

	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/sahilm/fuzzy"
)

// StartMenu is the launcher opened from the taskbar's start button.
type StartMenu struct {
	Open     bool
	Query    string
	Selected int
}

// Toggle opens a closed menu and closes an open one.
func (s *StartMenu) Toggle() {
	if s.Open {
		s.Close()
		return
	}
	s.Open = true
}

// Close hides the menu and clears the filter.
func (s *StartMenu) Close() {
	s.Open = false
	s.Query = ""
	s.Selected = 0
}

// Type appends text to the filter and selects the best match.
func (s *StartMenu) Type(text string) {
	s.Query += text
	s.Selected = 0
}

// Backspace removes the last rune of the filter.
func (s *StartMenu) Backspace() {
	if s.Query == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	s.Selected = 0
}

// Move changes the selection by delta, wrapping around n items.
func (s *StartMenu) Move(delta, n int) {
	if n == 0 {
		s.Selected = 0
		return
	}
	s.Selected = ((s.Selected+delta)%n + n) % n
}

// Items returns the entries matching the filter, best match first. With no
// filter every entry is returned in catalog order.
func (s *StartMenu) Items(entries []content.Entry) []content.Entry {
	if s.Query == "" {
		return entries
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Label + " " + e.Title
	}
	matches := fuzzy.Find(s.Query, names)
	out := make([]content.Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, entries[m.Index])
	}
	return out
}

// Selection returns the highlighted entry.
func (s *StartMenu) Selection(entries []content.Entry) (content.Entry, bool) {
	items := s.Items(entries)
	if len(items) == 0 {
		return content.Entry{}, false
	}
	return items[min(max(s.Selected, 0), len(items)-1)], true
}
