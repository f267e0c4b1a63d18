package token

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/dripjson/dripjson/internal/escape"
	"go4.org/mem"
)

// A Token is one lexical unit of a JSON document.  For example, the JSON
// value
//
//	{"id": 123, "tags": ["new"]}
//
// is tokenized as (in pseudocode for clarity):
//
//	{         -> StartObject
//	"id"      -> Scalar("id", String)
//	:         -> Colon
//	123       -> Scalar(123, Number)
//	,         -> Comma
//	"tags"    -> Scalar("tags", String)
//	:         -> Colon
//	[         -> StartArray
//	"new"     -> Scalar("new", String)
//	]         -> EndArray
//	}         -> EndObject
//
// Tokens carry no grammar: matching separators and brackets to structure is
// the parser's job.
type Token interface {
	fmt.Stringer
}

// StartObject represents the start of a JSON object (introduced by '{').
type StartObject struct{}

func (s *StartObject) String() string {
	return "StartObject"
}

var _ Token = &StartObject{}

// EndObject represents the end of a JSON object (introduced by '}').
type EndObject struct{}

func (e *EndObject) String() string {
	return "EndObject"
}

var _ Token = &EndObject{}

// StartArray represents the start of a JSON array (introduced by '[').
type StartArray struct{}

func (s *StartArray) String() string {
	return "StartArray"
}

var _ Token = &StartArray{}

// EndArray represents the end of a JSON array (introduced by ']').
type EndArray struct{}

func (e *EndArray) String() string {
	return "EndArray"
}

var _ Token = &EndArray{}

// Colon represents the name separator between an object key and its value.
type Colon struct{}

func (c *Colon) String() string {
	return "Colon"
}

var _ Token = &Colon{}

// Comma represents the value separator between members of an object or array.
type Comma struct{}

func (c *Comma) String() string {
	return "Comma"
}

var _ Token = &Comma{}

// Scalar is the type used to represent all scalar JSON values, i.e.
// - strings
// - numbers
// - booleans (two values)
// - null (a single value)
//
// The type is encoded in the TypeAndFlags field, while the Bytes field
// contains the literal representation of the value as found in the input.
// Decoding the payload is deferred until an accessor asks for it.
type Scalar struct {

	// Literal representation of the value, e.g.
	// - the string "foo" is represented as []byte("\"foo\"")
	// - the number 123.5 is represented as []byte("123.5")
	// - the boolean true is represented as []byte("true")
	Bytes []byte

	// Type of the value plus flags
	TypeAndFlags uint8
}

var _ Token = &Scalar{}

func NewScalar(tp ScalarType, bytes []byte) *Scalar {
	return &Scalar{
		Bytes:        bytes,
		TypeAndFlags: uint8(tp),
	}
}

func (s *Scalar) Type() ScalarType {
	return ScalarType(s.TypeAndFlags & TypeMask)
}

// IsUnescaped reports whether a string scalar is known to contain no escape
// sequences, in which case its payload is Bytes without the quotes.
func (s *Scalar) IsUnescaped() bool {
	return UnescapedMask&s.TypeAndFlags != 0
}

func (s *Scalar) IsNull() bool {
	return s.Type() == Null
}

func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%s)", s.Bytes)
}

// EqualsString is a convenience method to check if a Scalar represents the
// passed string.
func (s *Scalar) EqualsString(str string) bool {
	if s.Type() != String {
		return false
	}
	if s.IsUnescaped() {
		return string(s.Bytes[1:len(s.Bytes)-1]) == str
	}
	return s.ToString() == str
}

func (s *Scalar) Equal(t *Scalar) bool {
	if s == nil || t == nil {
		return false
	}
	if s.Type() != t.Type() {
		return false
	}
	switch s.Type() {
	case Null:
		return true
	case Boolean:
		// The bytes are "true" or "false", it is enough to compare the first
		return s.Bytes[0] == t.Bytes[0]
	case String:
		if bytes.Equal(s.Bytes, t.Bytes) {
			return true
		}
		if s.IsUnescaped() && t.IsUnescaped() {
			return false
		}
		return s.ToString() == t.ToString()
	case Number:
		if bytes.Equal(s.Bytes, t.Bytes) {
			return true
		}
		return s.Float64() == t.Float64()
	default:
		panic("invalid scalar type")
	}
}

// ToString returns the decoded payload of a string scalar.  It panics if the
// scalar is not a string.
func (s *Scalar) ToString() string {
	if s.Type() != String {
		panic("scalar is not a string")
	}
	if s.IsUnescaped() {
		return string(s.Bytes[1 : len(s.Bytes)-1])
	}
	dec, err := escape.Unquote(mem.B(s.Bytes[1 : len(s.Bytes)-1]))
	if err != nil {
		// The tokenizer validated the escapes already.
		panic(err)
	}
	return string(dec)
}

// Float64 returns the payload of a number scalar.  It panics if the scalar is
// not a number.
func (s *Scalar) Float64() float64 {
	x, err := strconv.ParseFloat(string(s.Bytes), 64)
	if err != nil {
		panic(err)
	}
	return x
}

// Int64 returns the payload of a number scalar as an int64, if it has no
// fraction or exponent part.
func (s *Scalar) Int64() (int64, error) {
	return strconv.ParseInt(string(s.Bytes), 10, 64)
}

// Bool returns the payload of a boolean scalar.  It panics if the scalar is
// not a boolean.
func (s *Scalar) Bool() bool {
	if s.Type() != Boolean {
		panic("scalar is not a boolean")
	}
	return s.Bytes[0] == 't'
}

// ToGo returns the payload as a native Go value: nil, bool, float64 or
// string.
func (s *Scalar) ToGo() any {
	switch s.Type() {
	case Null:
		return nil
	case Boolean:
		return s.Bool()
	case Number:
		return s.Float64()
	case String:
		return s.ToString()
	default:
		panic("invalid scalar type")
	}
}

// ScalarType encodes the four possible JSON scalar types.
type ScalarType uint8

const (
	Null               = 0x0 // the type of JSON null
	Boolean            = 0x1 // a JSON boolean
	Number             = 0x2 // a JSON number
	String  ScalarType = 0x3 // a JSON string
)

const (
	TypeMask      = 0b011
	UnescapedMask = 0b100
)

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)

var (
	TrueScalar  = NewScalar(Boolean, trueBytes)
	FalseScalar = NewScalar(Boolean, falseBytes)
	NullScalar  = NewScalar(Null, nullBytes)
)

func StringScalar(s string) *Scalar {
	quoted := make([]byte, 0, len(s)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, escape.Quote(mem.S(s))...)
	quoted = append(quoted, '"')
	return NewScalar(String, quoted)
}

func Float64Scalar(x float64) *Scalar {
	return NewScalar(Number, []byte(strconv.FormatFloat(x, 'g', -1, 64)))
}

func Int64Scalar(n int64) *Scalar {
	return NewScalar(Number, []byte(strconv.FormatInt(n, 10)))
}

func BoolScalar(b bool) *Scalar {
	if b {
		return TrueScalar
	}
	return FalseScalar
}

func ToScalar(value any) (*Scalar, error) {
	if value == nil {
		return NullScalar, nil
	}
	switch x := value.(type) {
	case string:
		return StringScalar(x), nil
	case float64:
		return Float64Scalar(x), nil
	case int64:
		return Int64Scalar(x), nil
	case int:
		return Int64Scalar(int64(x)), nil
	case bool:
		return BoolScalar(x), nil
	default:
		return nil, errors.New("not a scalar value")
	}
}
