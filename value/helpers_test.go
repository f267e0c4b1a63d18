package value

import (
	"strings"
	"testing"

	json "github.com/dripjson/dripjson/encoding/json"
)

func parseValue(t *testing.T, input string) Value {
	t.Helper()
	v, err := Next(json.NewTokenizer(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return v
}

func parseObject(t *testing.T, input string) *Object {
	t.Helper()
	o, ok := parseValue(t, input).(*Object)
	if !ok {
		t.Fatalf("expected object value")
	}
	return o
}

func parseArray(t *testing.T, input string) *Array {
	t.Helper()
	a, ok := parseValue(t, input).(*Array)
	if !ok {
		t.Fatalf("expected array value")
	}
	return a
}

// scalarGo unwraps a scalar value into its native Go form.
func scalarGo(t *testing.T, v Value) any {
	t.Helper()
	s, ok := v.(*Scalar)
	if !ok {
		t.Fatalf("expected scalar value, got %T", v)
	}
	return s.ToGo()
}

func assertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

func assertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}
