// This package contains ready-made [lookahead.Source] implementations for
// common sequence shapes.
package source

import (
	"github.com/seqkit/lookahead"
)

// SliceSource yields the elements of a slice in order. It never fails and
// supports cloning, which makes buffers built on it cloneable.
type SliceSource[Item any] struct {
	items []Item
	pos   int
}

var _ lookahead.CloneableSource[any] = (*SliceSource[any])(nil)

// Slice returns a source over items. The slice is not copied; the caller
// must not mutate it while the source is in use.
func Slice[Item any](items []Item) *SliceSource[Item] {
	return &SliceSource[Item]{items: items}
}

func (s *SliceSource[Item]) Next() (Item, bool, error) {
	if s.pos >= len(s.items) {
		var zero Item
		return zero, false, nil
	}

	item := s.items[s.pos]
	s.pos++
	return item, true, nil
}

// Clone returns a copy of the source positioned at the same element. Both
// copies share the backing slice.
func (s *SliceSource[Item]) Clone() lookahead.Source[Item] {
	return &SliceSource[Item]{items: s.items, pos: s.pos}
}
