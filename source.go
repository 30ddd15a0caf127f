package lookahead

// Source is a fallible producer of an ordered sequence of items. It is the
// only contract the buffer requires from the sequence it wraps.
//
// Next returns the next item with ok=true, or ok=false with a nil error once
// the sequence is exhausted, or a non-nil error when production fails (item
// and ok are meaningless in that case). Sources are stateful and forward-only;
// the buffer is their sole consumer.
//
// A Source is not required to be fused: the buffer re-queries it after
// end-of-sequence, so implementations must keep answering ok=false rather
// than panic.
type Source[Item any] interface {
	Next() (item Item, ok bool, err error)
}

// CloneableSource is a Source that can duplicate itself, including its
// position in the sequence. Sources implementing it make the wrapping
// [Buffer] cloneable.
type CloneableSource[Item any] interface {
	Source[Item]
	// Clone returns an independent copy of the source. Advancing one copy
	// must not affect the other.
	Clone() Source[Item]
}
