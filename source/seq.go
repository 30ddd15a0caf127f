package source

import (
	"iter"

	"github.com/seqkit/lookahead"
)

// SeqSource adapts an infallible [iter.Seq] to [lookahead.Source].
type SeqSource[Item any] struct {
	next func() (Item, bool)
	stop func()
}

var _ lookahead.Source[any] = (*SeqSource[any])(nil)

// Seq returns a source over seq. The sequence is pulled lazily via
// [iter.Pull]; call Stop to release it before exhaustion.
func Seq[Item any](seq iter.Seq[Item]) *SeqSource[Item] {
	next, stop := iter.Pull(seq)
	return &SeqSource[Item]{next: next, stop: stop}
}

func (s *SeqSource[Item]) Next() (Item, bool, error) {
	item, ok := s.next()
	return item, ok, nil
}

// Stop ends the sequence early. Subsequent calls to Next report
// end-of-sequence.
func (s *SeqSource[Item]) Stop() {
	s.stop()
}

// Seq2Source adapts a fallible [iter.Seq2] of (item, error) pairs to
// [lookahead.Source]. A pair with a non-nil error is surfaced as a source
// failure and ends the sequence.
type Seq2Source[Item any] struct {
	next func() (Item, error, bool)
	stop func()
}

var _ lookahead.Source[any] = (*Seq2Source[any])(nil)

// Seq2 returns a source over seq.
func Seq2[Item any](seq iter.Seq2[Item, error]) *Seq2Source[Item] {
	next, stop := iter.Pull2(seq)
	return &Seq2Source[Item]{next: next, stop: stop}
}

func (s *Seq2Source[Item]) Next() (Item, bool, error) {
	item, err, ok := s.next()
	if !ok {
		var zero Item
		return zero, false, nil
	}
	if err != nil {
		// The coroutine stays resumable, but an errored sequence is over.
		s.stop()
		var zero Item
		return zero, false, err
	}
	return item, true, nil
}

// Stop ends the sequence early. Subsequent calls to Next report
// end-of-sequence.
func (s *Seq2Source[Item]) Stop() {
	s.stop()
}
