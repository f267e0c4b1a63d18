package value

import (
	"errors"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/dripjson/dripjson/token"
)

func TestObjectEmpty(t *testing.T) {
	obj := parseObject(t, `{}`)

	assertFalse(t, obj.Advance(), "empty object should not advance")
	assertTrue(t, obj.Done(), "empty object should be done")
	if obj.Err() != nil {
		t.Errorf("unexpected error: %s", obj.Err())
	}
}

func TestObjectIterate(t *testing.T) {
	obj := parseObject(t, `{"a": 1, "b": 2, "c": 3}`)

	var keys []string
	var values []any
	for obj.Advance() {
		keys = append(keys, obj.CurrentKey())
		values = append(values, scalarGo(t, obj.CurrentValue()))
	}
	if obj.Err() != nil {
		t.Fatalf("unexpected error: %s", obj.Err())
	}
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("got keys %v, want [a b c]", keys)
	}
	if values[0] != 1.0 || values[1] != 2.0 || values[2] != 3.0 {
		t.Errorf("got values %v, want [1 2 3]", values)
	}
	assertTrue(t, obj.Done(), "object should be done after iteration")
}

func TestObjectEscapedKey(t *testing.T) {
	obj := parseObject(t, `{"a\tb": 1}`)
	v, err := obj.Get("a\tb")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if scalarGo(t, v) != 1.0 {
		t.Errorf("got %v, want 1", v)
	}
}

func TestObjectGetInOrder(t *testing.T) {
	obj := parseObject(t, `{"a":1,"b":[1,2,3],"c":{"d":4}}`)

	a, err := obj.Get("a")
	if err != nil {
		t.Fatalf("a: unexpected error: %s", err)
	}
	if scalarGo(t, a) != 1.0 {
		t.Errorf("a: got %v, want 1", a)
	}

	b, err := obj.Get("b")
	if err != nil {
		t.Fatalf("b: unexpected error: %s", err)
	}
	arr, ok := b.(*Array)
	assertTrue(t, ok, "b should be an array")
	var elems []any
	for arr.Advance() {
		elems = append(elems, scalarGo(t, arr.CurrentValue()))
	}
	if len(elems) != 3 || elems[0] != 1.0 || elems[1] != 2.0 || elems[2] != 3.0 {
		t.Errorf("b: got %v, want [1 2 3]", elems)
	}

	c, err := obj.Get("c")
	if err != nil {
		t.Fatalf("c: unexpected error: %s", err)
	}
	inner, ok := c.(*Object)
	assertTrue(t, ok, "c should be an object")
	d, err := inner.Get("d")
	if err != nil {
		t.Fatalf("d: unexpected error: %s", err)
	}
	if scalarGo(t, d) != 4.0 {
		t.Errorf("d: got %v, want 4", d)
	}

	// "a" is behind the cursor now: permanently gone.
	_, err = obj.Get("a")
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
	if missing.Key != "a" {
		t.Errorf("got key %q, want %q", missing.Key, "a")
	}
}

func TestObjectGetOutOfOrder(t *testing.T) {
	obj := parseObject(t, `{"a":1,"b":[1,2,3],"c":{"d":4}}`)

	// Asking for "c" first skips (and loses) "a" and "b".
	c, err := obj.Get("c")
	if err != nil {
		t.Fatalf("c: unexpected error: %s", err)
	}
	inner := c.(*Object)
	d, err := inner.Get("d")
	if err != nil {
		t.Fatalf("d: unexpected error: %s", err)
	}
	if scalarGo(t, d) != 4.0 {
		t.Errorf("d: got %v, want 4", d)
	}

	var missing *MissingKeyError
	if _, err := obj.Get("a"); !errors.As(err, &missing) {
		t.Errorf("expected MissingKeyError for skipped key, got %v", err)
	}
}

func TestObjectGetAbsentKey(t *testing.T) {
	obj := parseObject(t, `{"a": 1}`)
	var missing *MissingKeyError
	if _, err := obj.Get("zzz"); !errors.As(err, &missing) {
		t.Fatalf("expected MissingKeyError, got %v", err)
	}
	// The scan consumed the whole object looking for the key.
	assertTrue(t, obj.Done(), "object should be exhausted after failed lookup")
	if _, err := obj.Get("a"); !errors.As(err, &missing) {
		t.Errorf("expected MissingKeyError on exhausted object, got %v", err)
	}
}

func TestObjectGetAlreadyYieldedKey(t *testing.T) {
	obj := parseObject(t, `{"a": 1, "b": 2}`)
	assertTrue(t, obj.Advance(), "should advance to first member")
	if obj.CurrentKey() != "a" {
		t.Fatalf("got key %q, want a", obj.CurrentKey())
	}
	// "a" has been yielded by iteration; looking it up scans forward and
	// fails, consuming "b" on the way.
	var missing *MissingKeyError
	if _, err := obj.Get("a"); !errors.As(err, &missing) {
		t.Errorf("expected MissingKeyError, got %v", err)
	}
	assertTrue(t, obj.Done(), "object should be exhausted")
}

func TestObjectDuplicateKeys(t *testing.T) {
	obj := parseObject(t, `{"a": 1, "a": 2}`)
	v, err := obj.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if scalarGo(t, v) != 1.0 {
		t.Errorf("got %v, want 1", v)
	}
	// The second occurrence is still ahead of the cursor, so it is found.
	v, err = obj.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if scalarGo(t, v) != 2.0 {
		t.Errorf("got %v, want 2", v)
	}
}

func TestObjectReentrantDescendants(t *testing.T) {
	obj := parseObject(t, `{"a": [1, {"deep": [2]}, 3], "b": 4}`)

	a, err := obj.Get("a")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	arr := a.(*Array)
	assertTrue(t, arr.Advance(), "should reach first element")

	// The child array (and a grandchild, below) are still open; asking the
	// parent for "b" must drain them first.
	assertTrue(t, arr.Advance(), "should reach second element")
	grandchild := arr.CurrentValue().(*Object)

	b, err := obj.Get("b")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if scalarGo(t, b) != 4.0 {
		t.Errorf("got %v, want 4", b)
	}
	assertTrue(t, arr.Done(), "abandoned child should be exhausted")
	assertTrue(t, grandchild.Done(), "abandoned grandchild should be exhausted")
	assertFalse(t, arr.Advance(), "exhausted child should not advance")
	var missing *MissingKeyError
	if _, err := grandchild.Get("deep"); !errors.As(err, &missing) {
		t.Errorf("expected MissingKeyError from exhausted grandchild, got %v", err)
	}
}

func TestObjectSkip(t *testing.T) {
	obj := parseObject(t, `{"a": 1, "b": {"c": [2, 3]}}`)
	assertTrue(t, obj.Advance(), "should advance to first member")
	if err := obj.Skip(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	assertTrue(t, obj.Done(), "object should be done after Skip")
	assertFalse(t, obj.Advance(), "skipped object should not advance")
	// Skip on an exhausted container is a no-op.
	if err := obj.Skip(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestObjectGrammarErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"missing colon", `{"a" 1}`, "':'"},
		{"number key", `{1: 2}`, "object key"},
		{"missing comma", `{"a": 1 "b": 2}`, "',' or '}'"},
		{"missing value", `{"a":}`, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := parseObject(t, tt.input)
			for obj.Advance() {
			}
			var unexpected *UnexpectedTokenError
			if !errors.As(obj.Err(), &unexpected) {
				t.Fatalf("expected UnexpectedTokenError, got %v", obj.Err())
			}
			if unexpected.Expected != tt.expected {
				t.Errorf("got expected class %q, want %q", unexpected.Expected, tt.expected)
			}
		})
	}
}

func TestObjectTruncated(t *testing.T) {
	obj := parseObject(t, `{"a": 1`)
	assertTrue(t, obj.Advance(), "first member should be readable")
	assertFalse(t, obj.Advance(), "second advance should fail")
	var truncated *token.TruncatedInputError
	if !errors.As(obj.Err(), &truncated) {
		t.Errorf("expected TruncatedInputError, got %v", obj.Err())
	}
}

func TestObjectCurrentPanics(t *testing.T) {
	obj := parseObject(t, `{"a": 1}`)
	mtest.MustPanic(t, func() { obj.CurrentKey() })
	mtest.MustPanic(t, func() { obj.CurrentValue() })
	assertTrue(t, obj.Advance(), "should advance")
	assertFalse(t, obj.Advance(), "should be done")
	mtest.MustPanic(t, func() { obj.CurrentKey() })
	mtest.MustPanic(t, func() { obj.CurrentValue() })
}
