package value

import "github.com/dripjson/dripjson/token"

// An Array is a lazy JSON array.  Its elements become visible in document
// order as the underlying token stream is advanced past them; elements that
// have been yielded or skipped cannot be retrieved again.
type Array struct {
	container
	index int // index of the current element, -1 before the first Advance
}

var _ Value = &Array{}

// Advance moves to the next element of the array.  It returns false when
// the closing bracket is reached or an error occurs; the error is then
// available from Err.
func (a *Array) Advance() bool {
	if a.done || a.err != nil {
		return false
	}
	if err := a.finishChild(); err != nil {
		a.fail(err)
		return false
	}
	tok, ok := a.expectNext()
	if !ok {
		return false
	}
	if a.started {
		switch tok.(type) {
		case *token.Comma:
			if tok, ok = a.expectNext(); !ok {
				return false
			}
		case *token.EndArray:
			a.setDone()
			return false
		default:
			a.fail(&UnexpectedTokenError{Expected: "',' or ']'", Actual: tok})
			return false
		}
	} else if _, end := tok.(*token.EndArray); end {
		a.setDone()
		return false
	}
	v, err := a.p.value(tok)
	if err != nil {
		a.fail(err)
		return false
	}
	a.setCurrent(v)
	a.index++
	return true
}

// Index returns the index of the current element.  It panics if there is no
// current element.
func (a *Array) Index() int {
	if !a.started || a.done || a.err != nil {
		panic("no current element")
	}
	return a.index
}

// CurrentValue returns the current element.  It panics if there is no
// current element.
func (a *Array) CurrentValue() Value {
	if a.current == nil {
		panic("no current element")
	}
	return a.current
}

// At scans forward to the element at index i, discarding every intervening
// element.  An index at or before the current position fails immediately
// with an *IndexOutOfRangeError even if the element existed, because the
// stream cannot rewind; the same error is returned when the closing bracket
// is reached before index i.
func (a *Array) At(i int) (Value, error) {
	if i < 0 || a.started && i <= a.index {
		return nil, &IndexOutOfRangeError{Index: i}
	}
	for a.Advance() {
		if a.index == i {
			return a.current, nil
		}
	}
	if a.err != nil {
		return nil, a.err
	}
	return nil, &IndexOutOfRangeError{Index: i}
}
