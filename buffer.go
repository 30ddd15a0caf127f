// Package lookahead wraps a fallible sequence source with a lookahead buffer,
// letting a consumer (typically a lexer or parser) peek at upcoming items
// without consuming them. The source is read lazily: items are pulled only
// when a peek or consume call needs more lookahead than is already buffered.
package lookahead

import (
	"iter"

	"github.com/seqkit/lookahead/internal/deque"
)

// Buffer is a lookahead buffer over a [Source].
//
// Buffered and unbuffered items are indistinguishable to the caller: peeks
// and consumes always observe items in exactly the order the source produces
// them, with no duplication or loss. The zero value is not usable; construct
// with [New].
//
// A Buffer is not safe for concurrent use. Callers that need to share one
// must serialize access externally.
type Buffer[Item any] struct {
	source  Source[Item]
	queue   *deque.Deque[Item]
	metrics *metrics
}

// New wraps source in an empty buffer. No items are pulled at construction;
// the first pull happens on the first peek or consume call that needs one.
func New[Item any](source Source[Item], options ...Option[Item]) *Buffer[Item] {
	if source == nil {
		panic("source can't be nil")
	}

	cfg := newConfig(options...)

	return &Buffer[Item]{
		source:  source,
		queue:   deque.New[Item](cfg.capacity),
		metrics: cfg.metrics,
	}
}

// ensure tops the queue up to n items. This is the only place the source is
// ever read. It stops early when the source reports end-of-sequence (queue
// left short, nil error) or fails (error returned as-is, items pulled before
// the failure stay in the queue).
func (b *Buffer[Item]) ensure(n int) error {
	for b.queue.Len() < n {
		item, ok, err := b.source.Next()
		if err != nil {
			b.metrics.sourceErrors.Inc()
			b.metrics.depth.Set(float64(b.queue.Len()))
			return err
		}
		if !ok {
			break
		}
		b.queue.PushBack(item)
		b.metrics.itemsPulled.Inc()
	}

	b.metrics.depth.Set(float64(b.queue.Len()))
	return nil
}

// Peek returns a pointer to the next item without consuming it, or nil if
// the source is exhausted. Equivalent to b.PeekN(0).
func (b *Buffer[Item]) Peek() (*Item, error) {
	return b.PeekN(0)
}

// PeekN returns a pointer to the item at offset n without consuming anything,
// with n=0 being the next item. It returns nil if the source ends before that
// depth is reached. Panics if n is negative.
//
// The pointer addresses buffer-owned storage: the caller may mutate the item
// in place, and the pointer stays valid only until the next call that mutates
// the buffer.
func (b *Buffer[Item]) PeekN(n int) (*Item, error) {
	if n < 0 {
		panic("peek offset can't be < 0")
	}

	if err := b.ensure(n + 1); err != nil {
		return nil, err
	}
	b.metrics.peeks.Inc()

	if n >= b.queue.Len() {
		return nil, nil
	}
	return b.queue.At(n), nil
}

// PeekWindow returns pointers to the next n items without consuming anything.
// The result always has length n; if the source ends after k < n items, the
// first k slots are filled and the remaining n-k are nil. Panics if n is
// negative.
//
// The pointers address distinct buffered items and follow the same validity
// rule as [Buffer.PeekN].
func (b *Buffer[Item]) PeekWindow(n int) ([]*Item, error) {
	if n < 0 {
		panic("window size can't be < 0")
	}

	if err := b.ensure(n); err != nil {
		return nil, err
	}
	b.metrics.peeks.Inc()

	window := make([]*Item, n)
	for i := range min(n, b.queue.Len()) {
		window[i] = b.queue.At(i)
	}

	return window, nil
}

// Next consumes and returns the next item. A buffered item is popped without
// touching the source; with an empty queue the source is pulled exactly once
// and its result returned directly, never entering the queue.
func (b *Buffer[Item]) Next() (Item, bool, error) {
	if item, ok := b.queue.PopFront(); ok {
		b.metrics.itemsConsumed.Inc()
		b.metrics.depth.Set(float64(b.queue.Len()))
		return item, true, nil
	}

	item, ok, err := b.source.Next()
	if err != nil {
		b.metrics.sourceErrors.Inc()
		return item, false, err
	}
	if ok {
		b.metrics.itemsPulled.Inc()
		b.metrics.itemsConsumed.Inc()
	}
	return item, ok, nil
}

// Advance consumes the next item and discards it.
func (b *Buffer[Item]) Advance() error {
	_, _, err := b.Next()
	return err
}

// Buffered returns the number of items currently held in the queue. It never
// pulls from the source.
func (b *Buffer[Item]) Buffered() int {
	return b.queue.Len()
}

// Source returns the wrapped source. Reading from it directly skips the
// buffer and breaks ordering for any items still buffered; prefer
// [Buffer.Destructure] to resume direct iteration.
func (b *Buffer[Item]) Source() Source[Item] {
	return b.source
}

// Destructure consumes the buffer and yields back the source together with
// the residual queue, front first. Items that were pulled but not consumed
// come out in their original order, so a caller can drain the slice and then
// continue reading the source directly. The buffer must not be used
// afterwards.
func (b *Buffer[Item]) Destructure() (Source[Item], []Item) {
	source := b.source
	items := b.queue.Drain()
	b.source = nil
	b.queue = nil
	return source, items
}

// Clone duplicates the buffer. It reports false if the wrapped source does
// not implement [CloneableSource]. On success both buffers are fully
// independent: the queue is copied (items by value) and no pulls are
// performed.
func (b *Buffer[Item]) Clone() (*Buffer[Item], bool) {
	source, ok := b.source.(CloneableSource[Item])
	if !ok {
		return nil, false
	}

	return &Buffer[Item]{
		source:  source.Clone(),
		queue:   b.queue.Clone(),
		metrics: b.metrics,
	}, true
}

// Items returns a consuming iterator over the remaining items, draining the
// queue first and then the source. Each item is yielded with a nil error; on
// a source failure the zero item is yielded once together with the error and
// iteration stops. Iteration also stops at end-of-sequence.
func (b *Buffer[Item]) Items() iter.Seq2[Item, error] {
	return func(yield func(Item, error) bool) {
		for {
			item, ok, err := b.Next()
			if err != nil {
				var zero Item
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
