package lang

import "testing"

// doc builds a Document from alternating keys and values.
func doc(kv ...any) *Document {
	d := NewDocument()

	for i := 0; i+1 < len(kv); i += 2 {
		d.Set(kv[i].(string), kv[i+1])
	}

	return d
}

func mustConstants(t *testing.T, values map[string]Number) *Constants {
	t.Helper()

	c, err := NewConstants(values)
	if err != nil {
		t.Fatalf("NewConstants: %v", err)
	}

	return c
}

func attrString(t *testing.T, err error, key string) string {
	t.Helper()

	e := WrapError(err)

	v, ok := e.Attr(key)
	if !ok {
		t.Fatalf("error %q has no attribute %q", err, key)
	}

	return v.String()
}
