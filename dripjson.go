package dripjson

import (
	"errors"
	"io"

	"github.com/dripjson/dripjson/encoding/json"
	"github.com/dripjson/dripjson/token"
	"github.com/dripjson/dripjson/value"
)

// ErrStreamExhausted is returned by Decode after the single top-level value
// has been read (or abandoned).
var ErrStreamExhausted = errors.New("value stream exhausted")

// Load reads the root JSON value from r.  Scalars are returned fully
// decoded; objects and arrays are returned as lazy containers that consume
// r as they are accessed.  Input following the root value is left unread.
//
// Load returns io.EOF if r contains nothing but whitespace.
func Load(r io.Reader) (value.Value, error) {
	return value.Next(json.NewTokenizer(r))
}

// A Decoder reads the root JSON value from an input stream.  It exists to
// make the single-use nature of a decode session explicit: the second call
// to Decode fails with ErrStreamExhausted, whether or not the root value
// was fully consumed.
type Decoder struct {
	stream token.ReadStream
	used   bool
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{stream: json.NewTokenizer(r)}
}

// Decode returns the root value of the input.
func (d *Decoder) Decode() (value.Value, error) {
	if d.used {
		return nil, ErrStreamExhausted
	}
	d.used = true
	return value.Next(d.stream)
}
