package lang

import (
	"context"
	"iter"
	"log/slog"
	"maps"
	"slices"
)

// DefaultReservedKey is the top-level key whose table declares constants.
const DefaultReservedKey = "def"

// Constants is a read-only table of named numeric values available to
// constant expressions. A nil *Constants is an empty table.
type Constants struct {
	values map[string]Number
}

// NewConstants returns a table holding a copy of values. Every name must be
// a valid identifier, otherwise [ErrInvalidIdentifier] is returned.
func NewConstants(values map[string]Number) (*Constants, error) {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if !IsIdentifier(name) {
			return nil, ErrInvalidIdentifier.With(slog.String("key", name))
		}
	}

	return &Constants{values: maps.Clone(values)}, nil
}

// Lookup returns the value of the named constant.
func (c *Constants) Lookup(name string) (Number, bool) {
	if c == nil {
		return Number{}, false
	}

	n, ok := c.values[name]

	return n, ok
}

// Len returns the number of constants.
func (c *Constants) Len() int {
	if c == nil {
		return 0
	}

	return len(c.values)
}

// All returns an iterator over all constants in name order.
func (c *Constants) All() iter.Seq2[string, Number] {
	return func(yield func(string, Number) bool) {
		if c == nil {
			return
		}

		for _, name := range slices.Sorted(maps.Keys(c.values)) {
			if !yield(name, c.values[name]) {
				return
			}
		}
	}
}

// ExtractConstants builds the constant table from the reserved top-level
// section of doc (see [WithReservedKey]) and removes that section from doc.
//
// Every key in the section must be a valid identifier
// ([ErrInvalidIdentifier]) and every value must be an int or float
// ([ErrUnsupportedType]). If the section is absent, the table is empty and
// doc is left unchanged. On error doc is left unchanged. Traces are logged
// with ctx.
func ExtractConstants(ctx context.Context, doc *Document, opts ...Option) (*Constants, error) {
	o := makeOptions(opts...)

	c := &Constants{values: make(map[string]Number)}

	section, ok := doc.Get(o.reservedKey)
	if !ok {
		return c, nil
	}

	table, ok := section.(*Document)
	if !ok {
		return nil, ErrUnsupportedType.With(
			slog.String("key", o.reservedKey),
			slog.String("type", typeName(section)),
		)
	}

	for name, value := range table.All() {
		if !IsIdentifier(name) {
			return nil, ErrInvalidIdentifier.With(slog.String("key", name))
		}

		n, ok := numberFromValue(value)
		if !ok {
			return nil, ErrUnsupportedType.With(
				slog.String("key", name),
				slog.String("type", typeName(value)),
			)
		}

		c.values[name] = n

		o.logger.TraceContext(ctx, "constant declared",
			slog.String("name", name),
			slog.Any("value", n),
		)
	}

	doc.Delete(o.reservedKey)

	return c, nil
}
