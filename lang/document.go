package lang

import (
	"iter"
	"slices"
)

// Document is an ordered mapping from key to value.
//
// Values are one of:
//   - int64, float64, bool, string (scalars)
//   - []any (lists of values)
//   - *Document (nested tables)
//
// Decoders may store other values (for example, dates); these are rejected
// with [ErrUnsupportedType] when rendered.
type Document struct {
	keys   []string
	values map[string]any
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]any)}
}

// Set assigns value to key. A new key is appended after all existing keys; an
// existing key keeps its position.
func (d *Document) Set(key string, value any) *Document {
	if d.values == nil {
		d.values = make(map[string]any)
	}

	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}

	d.values[key] = value

	return d
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}

	v, ok := d.values[key]

	return v, ok
}

// Delete removes key and reports whether it was present.
func (d *Document) Delete(key string) bool {
	if d == nil {
		return false
	}

	if _, ok := d.values[key]; !ok {
		return false
	}

	delete(d.values, key)

	d.keys = slices.DeleteFunc(d.keys, func(k string) bool { return k == key })

	return true
}

// Len returns the number of entries.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.keys)
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}

	return slices.Clone(d.keys)
}

// All returns an iterator over all entries in document order.
func (d *Document) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}

		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the document. Lists and nested documents are
// copied; other values are copied by assignment.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	c := &Document{
		keys:   slices.Clone(d.keys),
		values: make(map[string]any, len(d.values)),
	}

	for k, v := range d.values {
		c.values[k] = cloneValue(v)
	}

	return c
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case *Document:
		return val.Clone()
	case []any:
		c := make([]any, len(val))
		for i, e := range val {
			c[i] = cloneValue(e)
		}

		return c
	default:
		return v
	}
}
