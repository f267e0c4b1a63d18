package value

import "github.com/dripjson/dripjson/token"

// An Object is a lazy JSON object.  Its members become visible in document
// order as the underlying token stream is advanced past them; members that
// have been yielded or skipped cannot be retrieved again.
type Object struct {
	container
	currentKey *token.Scalar
}

var _ Value = &Object{}

// Advance moves to the next member of the object, driving the shared stream
// forward past the key and name separator.  It returns false when the
// closing brace is reached or an error occurs; the error is then available
// from Err.
func (o *Object) Advance() bool {
	if o.done || o.err != nil {
		return false
	}
	if err := o.finishChild(); err != nil {
		o.fail(err)
		return false
	}
	tok, ok := o.expectNext()
	if !ok {
		return false
	}
	if o.started {
		switch tok.(type) {
		case *token.Comma:
			if tok, ok = o.expectNext(); !ok {
				return false
			}
		case *token.EndObject:
			o.setDone()
			return false
		default:
			o.fail(&UnexpectedTokenError{Expected: "',' or '}'", Actual: tok})
			return false
		}
	} else if _, end := tok.(*token.EndObject); end {
		o.setDone()
		return false
	}
	key, isScalar := tok.(*token.Scalar)
	if !isScalar || key.Type() != token.String {
		o.fail(&UnexpectedTokenError{Expected: "object key", Actual: tok})
		return false
	}
	if tok, ok = o.expectNext(); !ok {
		return false
	}
	if _, isColon := tok.(*token.Colon); !isColon {
		o.fail(&UnexpectedTokenError{Expected: "':'", Actual: tok})
		return false
	}
	if tok, ok = o.expectNext(); !ok {
		return false
	}
	v, err := o.p.value(tok)
	if err != nil {
		o.fail(err)
		return false
	}
	o.currentKey = key
	o.setCurrent(v)
	return true
}

// CurrentKey returns the key of the current member.  It panics if there is
// no current member.
func (o *Object) CurrentKey() string {
	if !o.started || o.done || o.err != nil {
		panic("no current member")
	}
	return o.currentKey.ToString()
}

// CurrentValue returns the value of the current member.  It panics if there
// is no current member.
func (o *Object) CurrentValue() Value {
	if o.current == nil {
		panic("no current member")
	}
	return o.current
}

// Get scans forward from the current position for the given key, discarding
// every intervening member, and returns its value.  If the closing brace is
// reached first it fails with a *MissingKeyError: the key is either absent
// or was already passed, which the forward-only stream cannot tell apart.
func (o *Object) Get(key string) (Value, error) {
	for o.Advance() {
		if o.currentKey.EqualsString(key) {
			return o.current, nil
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	return nil, &MissingKeyError{Key: key}
}
