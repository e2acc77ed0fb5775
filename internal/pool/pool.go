// Package pool holds sync.Pool wrappers for objects allocated on every frame.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

var stringBuilderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// GetStringBuilder returns an empty builder from the pool.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets sb and returns it to the pool. Oversized builders
// are dropped so a single huge frame does not pin memory.
func PutStringBuilder(sb *strings.Builder) {
	if sb.Cap() > 64*1024 {
		return
	}
	sb.Reset()
	stringBuilderPool.Put(sb)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, 16)
		return &s
	},
}

// GetLayerSlice returns an empty layer slice with room for a typical frame.
func GetLayerSlice() *[]*lipgloss.Layer {
	return layerSlicePool.Get().(*[]*lipgloss.Layer)
}

// PutLayerSlice clears the slice and returns it to the pool.
func PutLayerSlice(layers *[]*lipgloss.Layer) {
	clear(*layers)
	*layers = (*layers)[:0]
	layerSlicePool.Put(layers)
}
