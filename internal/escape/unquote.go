// Package escape handles decoding of JSON string escapes.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, combining
// surrogate pairs into the codepoint they encode.  An unpaired surrogate or
// an invalid escape is replaced by the Unicode replacement rune.  Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) {
		var buf [6]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			cp, rest, err := hexRune(src)
			if err != nil {
				return nil, err
			}
			src = rest
			if utf16.IsSurrogate(cp) {
				// A high surrogate followed by an escaped low surrogate
				// encodes a single codepoint.  Anything else is unpaired.
				if src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
					cp2, rest, err := hexRune(src.SliceFrom(2))
					if err != nil {
						return nil, err
					}
					if combined := utf16.DecodeRune(cp, cp2); combined != utf8.RuneError {
						cp = combined
						src = rest
					} else {
						cp = utf8.RuneError
					}
				} else {
					cp = utf8.RuneError
				}
			}
			putRune(cp)
		default:
			putRune(utf8.RuneError)
		}

		// Look for the next escape sequence; if there is none the rest of the
		// input can be copied wholesale.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// hexRune decodes the 4 hex digit payload of a \uXXXX escape at the start of
// src, returning the rest of src.
func hexRune(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 4 {
		return 0, src, errors.New("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := src.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, src, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, src.SliceFrom(4), nil
}
