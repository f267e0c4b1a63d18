// Package json tokenizes JSON input read incrementally from an io.Reader.
//
// The Tokenizer is strictly pull-based: each call to Next consumes exactly
// one token's worth of input and never reads past the end of the token it
// returns, so the underlying reader is only asked for more bytes when the
// consumer needs them.
package json

import (
	"fmt"
	"io"

	"github.com/dripjson/dripjson/internal/scanner"
	"github.com/dripjson/dripjson/token"
)

// A Tokenizer reads JSON input and produces one token at a time.
type Tokenizer struct {
	scanr *scanner.Scanner
}

var _ token.ReadStream = &Tokenizer{}

// NewTokenizer sets up a new Tokenizer instance to read from the given input.
func NewTokenizer(in io.Reader) *Tokenizer {
	return &Tokenizer{scanr: scanner.NewScanner(in)}
}

// NewTokenizerSize is like NewTokenizer with an explicit scanner buffer size.
func NewTokenizerSize(in io.Reader, size int) *Tokenizer {
	return &Tokenizer{scanr: scanner.NewScannerSize(in, size)}
}

// Next skips insignificant whitespace and returns the next token.  At the
// end of the input it returns io.EOF; if the input ends in the middle of a
// token it returns a *token.TruncatedInputError.
func (t *Tokenizer) Next() (token.Token, error) {
	b, err := t.scanr.SkipSpaceAndPeek()
	if err != nil {
		return nil, err
	}
	switch b {
	case scanner.EOF:
		return nil, io.EOF
	case '{':
		t.scanr.Read()
		return startObjectInstance, nil
	case '}':
		t.scanr.Read()
		return endObjectInstance, nil
	case '[':
		t.scanr.Read()
		return startArrayInstance, nil
	case ']':
		t.scanr.Read()
		return endArrayInstance, nil
	case ':':
		t.scanr.Read()
		return colonInstance, nil
	case ',':
		t.scanr.Read()
		return commaInstance, nil
	case '"':
		return ParseString(t.scanr)
	case 't':
		if err := checkBytes(t.scanr, trueBytes); err != nil {
			return nil, err
		}
		return token.TrueScalar, nil
	case 'f':
		if err := checkBytes(t.scanr, falseBytes); err != nil {
			return nil, err
		}
		return token.FalseScalar, nil
	case 'n':
		if err := checkBytes(t.scanr, nullBytes); err != nil {
			return nil, err
		}
		return token.NullScalar, nil
	default:
		if b == '-' || scanner.IsDigit(b) {
			return ParseNumber(t.scanr)
		}
		return nil, UnexpectedByte(t.scanr, "unexpected")
	}
}

// ParseString parses a JSON string literal from the scanner.  Escapes are
// validated but not decoded: the scalar keeps the raw bytes, including the
// enclosing quotes.
func ParseString(scanr *scanner.Scanner) (*token.Scalar, error) {
	scanr.StartToken()
	if err := ExpectByte(scanr, '"'); err != nil {
		return nil, err
	}
	isUnescaped := true
	for {
		b, err := scanr.Read()
		if err != nil {
			return nil, err
		}
		switch b {
		case scanner.EOF:
			return nil, truncated(scanr)
		case '\\':
			isUnescaped = false
			x, err := scanr.Read()
			if err != nil {
				return nil, err
			}
			switch x {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				continue
			case 'u':
				for i := 0; i < 4; i++ {
					b, err = scanr.Read()
					if err != nil {
						return nil, err
					}
					if b == scanner.EOF {
						return nil, truncated(scanr)
					}
					if !scanner.IsHexDigit(b) {
						scanr.Back()
						return nil, UnexpectedByte(scanr, "expected hex, got")
					}
				}
			case scanner.EOF:
				return nil, truncated(scanr)
			default:
				scanr.Back()
				return nil, UnexpectedByte(scanr, "invalid escape character")
			}
		case '"':
			scalar := token.NewScalar(token.String, scanr.EndToken())
			if isUnescaped {
				scalar.TypeAndFlags |= token.UnescapedMask
			}
			return scalar, nil
		default:
			if scanner.IsCtrl(b) {
				scanr.Back()
				return nil, UnexpectedByte(scanr, "invalid control character in string")
			}
		}
	}
}

// ParseNumber parses a JSON number literal from the scanner.  The scalar
// keeps the raw bytes, so no precision is lost to an early conversion.
func ParseNumber(scanr *scanner.Scanner) (*token.Scalar, error) {
	scanr.StartToken()
	var n int
	b, err := scanr.Read()

	// Sign part
	if b == '-' {
		b, err = scanr.Read()
	}
	if err != nil {
		return nil, err
	}

	// Integer part, leading zeros are not allowed
	if b == '0' {
		b, err = scanr.Read()
		if err != nil {
			return nil, err
		}
		if scanner.IsDigit(b) {
			scanr.Back()
			return nil, UnexpectedByte(scanr, "leading zeros not allowed, got")
		}
	} else if b >= '1' && b <= '9' {
		b, _, err = ReadDigits(scanr)
		if err != nil {
			return nil, err
		}
	} else if b == scanner.EOF {
		return nil, truncated(scanr)
	} else {
		scanr.Back()
		return nil, UnexpectedByte(scanr, "expected digit, got")
	}

	// Fraction part
	if b == '.' {
		b, n, err = ReadDigits(scanr)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			if b == scanner.EOF {
				return nil, truncated(scanr)
			}
			scanr.Back()
			return nil, UnexpectedByte(scanr, "expected digit, got")
		}
	}

	// Exponent part
	if b == 'e' || b == 'E' {
		b, err = scanr.Peek()
		if err != nil {
			return nil, err
		}
		if b == '-' || b == '+' {
			scanr.Read()
		}
		b, n, err = ReadDigits(scanr)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			if b == scanner.EOF {
				return nil, truncated(scanr)
			}
			scanr.Back()
			return nil, UnexpectedByte(scanr, "expected digit, got")
		}
	}
	scanr.Back()
	return token.NewScalar(token.Number, scanr.EndToken()), nil
}

// ReadDigits consumes a run of digits, returning the first non-digit byte
// and the number of digits read.
func ReadDigits(scanr *scanner.Scanner) (byte, int, error) {
	var n int
	for {
		b, err := scanr.Read()
		if err != nil {
			return 0, n, err
		}
		if !scanner.IsDigit(b) {
			return b, n, nil
		}
		n++
	}
}

// ExpectByte consumes the next byte, failing if it is not xb.
func ExpectByte(scanr *scanner.Scanner, xb byte) error {
	b, err := scanr.Read()
	if err != nil {
		return err
	}
	if b == scanner.EOF {
		return truncated(scanr)
	}
	if b != xb {
		scanr.Back()
		return UnexpectedByte(scanr, "expected %q, got", xb)
	}
	return nil
}

// UnexpectedByte builds a *SyntaxError for the byte at the current position.
func UnexpectedByte(scanr *scanner.Scanner, expected string, args ...interface{}) error {
	pos := scanr.CurrentPos()
	b, err := scanr.Read()
	if err != nil {
		return err
	}
	if b == scanner.EOF {
		return truncated(scanr)
	}
	return &SyntaxError{
		Msg:  fmt.Sprintf("%s: %q", fmt.Sprintf(expected, args...), b),
		Line: pos.Line,
		Col:  pos.Col,
	}
}

func truncated(scanr *scanner.Scanner) error {
	pos := scanr.CurrentPos()
	return &token.TruncatedInputError{Line: pos.Line, Col: pos.Col}
}

// A SyntaxError reports a malformed token: a bad escape, a bad number, an
// unknown literal or a stray byte.  Line and Col are 0-based.
type SyntaxError struct {
	Msg  string
	Line int
	Col  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at L%d,C%d: %s", e.Line+1, e.Col+1, e.Msg)
}

func checkBytes(scanr *scanner.Scanner, expected []byte) error {
	for _, xb := range expected {
		if err := ExpectByte(scanr, xb); err != nil {
			return err
		}
	}
	return nil
}

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)

var (
	startObjectInstance = &token.StartObject{}
	endObjectInstance   = &token.EndObject{}
	startArrayInstance  = &token.StartArray{}
	endArrayInstance    = &token.EndArray{}
	colonInstance       = &token.Colon{}
	commaInstance       = &token.Comma{}
)
