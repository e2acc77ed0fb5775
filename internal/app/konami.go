package app

import "github.com/Gaurav-Gosain/folios/internal/config"

// KonamiCode opens the hidden window.
var KonamiCode = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// Sequence matches a fixed run of keys typed one after another.
type Sequence struct {
	keys []string
	pos  int
}

// NewSequence returns a matcher for keys.
func NewSequence(keys ...string) *Sequence {
	norm := make([]string, len(keys))
	for i, k := range keys {
		norm[i] = config.NormalizeKey(k)
	}
	return &Sequence{keys: norm}
}

// Feed advances the match with k and reports whether the sequence just
// completed. A wrong key starts over without counting itself as a first key.
func (s *Sequence) Feed(k string) bool {
	if len(s.keys) == 0 {
		return false
	}
	if config.NormalizeKey(k) != s.keys[s.pos] {
		s.pos = 0
		return false
	}
	s.pos++
	if s.pos == len(s.keys) {
		s.pos = 0
		return true
	}
	return false
}

// Progress is the number of keys matched so far.
func (s *Sequence) Progress() int {
	return s.pos
}
