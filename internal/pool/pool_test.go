package pool

import (
	"strings"
	"sync"
	"testing"

	"charm.land/lipgloss/v2"
)

// TestStringBuilderPool tests the string builder pool
func TestStringBuilderPool(t *testing.T) {
	sb := GetStringBuilder()
	if sb == nil {
		t.Fatal("GetStringBuilder returned nil")
	}

	sb.WriteString("test")
	if sb.String() != "test" {
		t.Errorf("Expected 'test', got %q", sb.String())
	}

	PutStringBuilder(sb)

	// Get again and verify it's reset
	sb2 := GetStringBuilder()
	if sb2.Len() != 0 {
		t.Errorf("String builder should be reset, but has length %d", sb2.Len())
	}

	PutStringBuilder(sb2)
}

// TestStringBuilderPool_Concurrent tests concurrent access to string builder pool
func TestStringBuilderPool_Concurrent(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sb := GetStringBuilder()
				sb.WriteString("test")
				if sb.String() != "test" {
					t.Errorf("Goroutine %d iteration %d: unexpected content", id, j)
				}
				PutStringBuilder(sb)
			}
		}(i)
	}

	wg.Wait()
}

// TestStringBuilderPool_DropsOversized makes sure huge builders are not kept
func TestStringBuilderPool_DropsOversized(t *testing.T) {
	sb := GetStringBuilder()
	sb.Grow(128 * 1024)
	sb.WriteString("big")
	PutStringBuilder(sb)

	// Oversized builders are not reset when dropped.
	if sb.Len() == 0 {
		t.Error("oversized builder should have been dropped without reset")
	}
}

// TestLayerSlicePool tests the layer slice pool
func TestLayerSlicePool(t *testing.T) {
	layers := GetLayerSlice()
	if layers == nil {
		t.Fatal("GetLayerSlice returned nil")
	}
	if *layers == nil {
		t.Fatal("Layer slice is nil")
	}
	if cap(*layers) < 16 {
		t.Errorf("Expected capacity >= 16, got %d", cap(*layers))
	}

	*layers = append(*layers, lipgloss.NewLayer("x"))
	PutLayerSlice(layers)

	layers2 := GetLayerSlice()
	if layers2 == nil {
		t.Fatal("Second GetLayerSlice returned nil")
	}
	if len(*layers2) != 0 {
		t.Errorf("Layer slice should be empty, has %d", len(*layers2))
	}
	PutLayerSlice(layers2)
}

// BenchmarkStringBuilderPool benchmarks the string builder pool
func BenchmarkStringBuilderPool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := GetStringBuilder()
			sb.WriteString("test string")
			_ = sb.String()
			PutStringBuilder(sb)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sb := &strings.Builder{}
			sb.WriteString("test string")
			_ = sb.String()
		}
	})
}

// BenchmarkLayerSlicePool benchmarks the layer slice pool
func BenchmarkLayerSlicePool(b *testing.B) {
	b.Run("WithPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			layers := GetLayerSlice()
			PutLayerSlice(layers)
		}
	})

	b.Run("WithoutPool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = make([]*lipgloss.Layer, 0, 16)
		}
	})
}
