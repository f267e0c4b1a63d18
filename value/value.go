// Package value turns a stream of JSON tokens into lazily decoded values.
//
// Scalars are decoded as soon as their token is read.  Objects and arrays
// are not: they are handles bound to the single shared token stream, whose
// entries become visible one at a time as the caller iterates or looks them
// up.  Access is strictly forward-only: an entry that has been yielded or
// skipped is gone for good, because the token stream cannot rewind.  This is
// a deliberate policy, not a defect: buffering past entries would make peak
// memory grow with document size instead of nesting depth.
package value

import (
	"io"

	"github.com/dripjson/dripjson/token"
)

// A Value is a decoded JSON value: one of *Scalar, *Object and *Array.
// Callers dispatch on the concrete type with a type switch, or use the Key
// and Index helpers for dynamic access.
type Value interface {
	// skip consumes whatever remains of the value in the token stream.
	skip() error
}

// Next reads a single value from the token stream.  Composite values are
// returned as soon as their opening token has been read; the rest of their
// content stays in the stream until asked for.  At the end of the stream
// Next returns io.EOF.
func Next(stream token.ReadStream) (Value, error) {
	p := &parser{stream: stream}
	tok, err := stream.Next()
	if err != nil {
		return nil, err
	}
	return p.value(tok)
}

// A Scalar is a fully decoded JSON scalar value.
type Scalar token.Scalar

var _ Value = &Scalar{}

func (s *Scalar) skip() error { return nil }

// Scalar returns the token payload of the value.
func (s *Scalar) Scalar() *token.Scalar {
	return (*token.Scalar)(s)
}

// ToGo returns the value as a native Go value: nil, bool, float64 or string.
func (s *Scalar) ToGo() any {
	return (*token.Scalar)(s).ToGo()
}

// Key looks up key in v, failing with a *TypeMismatchError if v is not an
// object.
func Key(v Value, key string) (Value, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, &TypeMismatchError{Op: "key lookup", Kind: kindName(v)}
	}
	return o.Get(key)
}

// Index looks up index i in v, failing with a *TypeMismatchError if v is not
// an array.
func Index(v Value, i int) (Value, error) {
	a, ok := v.(*Array)
	if !ok {
		return nil, &TypeMismatchError{Op: "index lookup", Kind: kindName(v)}
	}
	return a.At(i)
}

func kindName(v Value) string {
	switch v.(type) {
	case *Scalar:
		return "scalar"
	case *Object:
		return "object"
	case *Array:
		return "array"
	default:
		return "value"
	}
}

// A parser owns the single shared read position over the token stream.  All
// live containers of one decode session reference the same parser; only the
// innermost currently-read container may pull from it.
type parser struct {
	stream token.ReadStream
}

// next returns the next token.  The parser only asks for a token when the
// grammar requires one, so a clean end of stream here means the input was
// cut off inside an unclosed object or array.
func (p *parser) next() (token.Token, error) {
	tok, err := p.stream.Next()
	if err == io.EOF {
		return nil, &token.TruncatedInputError{Line: -1, Col: -1}
	}
	return tok, err
}

// value turns the first token of a value into a Value.
func (p *parser) value(tok token.Token) (Value, error) {
	switch t := tok.(type) {
	case *token.Scalar:
		return (*Scalar)(t), nil
	case *token.StartObject:
		return &Object{container: container{p: p}}, nil
	case *token.StartArray:
		return &Array{container: container{p: p}}, nil
	default:
		return nil, &UnexpectedTokenError{Expected: "value", Actual: tok}
	}
}

// skipToClose consumes tokens until the close bracket of the container the
// parser is currently inside.  Only bracket balance is checked; separators
// in skipped entries are not validated, mirroring the fact that skipped data
// is never materialized.
func (p *parser) skipToClose() error {
	depth := 0
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case *token.StartObject, *token.StartArray:
			depth++
		case *token.EndObject, *token.EndArray:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}
