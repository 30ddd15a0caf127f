// Package deque implements a growable ring buffer with FIFO semantics and
// stable O(1) offset addressing.
package deque

const minCapacity = 8

// Deque is a double-ended queue backed by a ring buffer. The zero value is
// not usable; construct with [New].
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

// New returns an empty deque with space preallocated for capacity items.
// Capacity 0 defers allocation until the first push.
func New[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}

	d := Deque[T]{}
	if capacity > 0 {
		d.buf = make([]T, max(capacity, minCapacity))
	}
	return &d
}

// Len returns the number of items in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// Cap returns the current capacity of the underlying buffer.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

// PushBack appends v to the back of the deque, growing the buffer if full.
func (d *Deque[T]) PushBack(v T) {
	if d.size == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.size)%len(d.buf)] = v
	d.size++
}

// PopFront removes and returns the front item. It reports false on an empty
// deque.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}

	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.size--
	return v, true
}

// At returns a pointer to the item at offset i from the front. The pointer
// stays valid until the next PushBack or PopFront. Panics if i is out of
// range.
func (d *Deque[T]) At(i int) *T {
	if i < 0 || i >= d.size {
		panic("deque index out of range")
	}
	return &d.buf[(d.head+i)%len(d.buf)]
}

// Clone returns an independent copy of the deque. Items are copied by value.
func (d *Deque[T]) Clone() *Deque[T] {
	clone := New[T](d.size)
	for i := range d.size {
		clone.PushBack(*d.At(i))
	}
	return clone
}

// Drain removes all items and returns them front first. The deque is empty
// afterwards.
func (d *Deque[T]) Drain() []T {
	items := make([]T, 0, d.size)
	for {
		v, ok := d.PopFront()
		if !ok {
			return items
		}
		items = append(items, v)
	}
}

func (d *Deque[T]) grow() {
	capacity := max(len(d.buf)*2, minCapacity)
	buf := make([]T, capacity)
	for i := range d.size {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}
