package token

import (
	"fmt"
	"io"
)

// A ReadStream is a pull source of tokens.  Next returns the next token, or
// io.EOF once the input is exhausted with no partial token pending.  Nothing
// is produced ahead of what the consumer asks for.
type ReadStream interface {
	Next() (Token, error)
}

// SliceReadStream reads tokens from a fixed slice.  It is mostly useful for
// tests.
type SliceReadStream struct {
	toks []Token
}

var _ ReadStream = &SliceReadStream{}

func NewSliceReadStream(toks []Token) *SliceReadStream {
	return &SliceReadStream{toks: toks}
}

func (r *SliceReadStream) Next() (Token, error) {
	if len(r.toks) == 0 {
		return nil, io.EOF
	}
	tok := r.toks[0]
	r.toks = r.toks[1:]
	return tok, nil
}

// A TruncatedInputError reports that the byte source ran out in the middle of
// a token or an unclosed object or array.  Line and Col locate the end of the
// input when known; they are -1 otherwise.
type TruncatedInputError struct {
	Line int
	Col  int
}

func (e *TruncatedInputError) Error() string {
	if e.Line < 0 {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected end of input at L%d,C%d", e.Line+1, e.Col+1)
}
