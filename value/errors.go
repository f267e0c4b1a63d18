package value

import (
	"fmt"

	"github.com/dripjson/dripjson/token"
)

// An UnexpectedTokenError reports a token that is valid lexically but not at
// the current grammar position.
type UnexpectedTokenError struct {
	Expected string
	Actual   token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s, got %s", e.Expected, e.Actual)
}

// A MissingKeyError reports a key that was not found scanning forward from
// the current position.  A key that never existed and a key that was
// already passed are indistinguishable.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q (absent or already passed)", e.Key)
}

// An IndexOutOfRangeError reports an index that was not found scanning
// forward from the current position.  An index past the end of the array
// and an index that was already passed are indistinguishable.
type IndexOutOfRangeError struct {
	Index int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (absent or already passed)", e.Index)
}

// A TypeMismatchError reports a mapping operation applied to a non-object
// value or a sequence operation applied to a non-array value.
type TypeMismatchError struct {
	Op   string
	Kind string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot perform %s on a %s", e.Op, e.Kind)
}
