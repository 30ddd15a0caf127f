package source

import (
	"github.com/seqkit/lookahead"
)

// FuncSource adapts a plain function to [lookahead.Source]. The function
// follows the Source contract: item with ok=true, ok=false on
// end-of-sequence, or a non-nil error on failure.
type FuncSource[Item any] struct {
	fn func() (Item, bool, error)
}

var _ lookahead.Source[any] = (*FuncSource[any])(nil)

// Func returns a source backed by fn.
func Func[Item any](fn func() (Item, bool, error)) *FuncSource[Item] {
	if fn == nil {
		panic("fn can't be nil")
	}
	return &FuncSource[Item]{fn: fn}
}

func (s *FuncSource[Item]) Next() (Item, bool, error) {
	return s.fn()
}
