package wm

// DefaultZBase leaves room below windows for the wallpaper and desktop icons.
const DefaultZBase = 10

// ZOrder hands out stacking values. Every call to Next returns a value larger
// than all previous ones, so the most recently focused window is on top.
type ZOrder struct {
	next int
}

// NewZOrder returns an allocator whose first value is base.
func NewZOrder(base int) *ZOrder {
	return &ZOrder{next: base}
}

// Next returns the current value and advances the counter.
func (z *ZOrder) Next() int {
	v := z.next
	z.next++
	return v
}

// Peek returns the value the next call to Next will hand out.
func (z *ZOrder) Peek() int {
	return z.next
}
