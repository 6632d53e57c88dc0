package lang

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

// Convert extracts the constant table from doc (removing the reserved
// section, see [ExtractConstants]) and renders the remainder with [Render].
//
// Each call uses its own constant table, so concurrent conversions of
// different documents do not interfere.
func Convert(ctx context.Context, doc *Document, opts ...Option) (string, error) {
	consts, err := ExtractConstants(ctx, doc, opts...)
	if err != nil {
		return "", err
	}

	out, err := Render(ctx, doc, consts, opts...)
	if err != nil {
		return "", err
	}

	makeOptions(opts...).logger.TraceContext(ctx, "render complete",
		slog.Int("constants", consts.Len()),
		slog.Int("keys", doc.Len()),
		slog.Int("bytes", len(out)),
	)

	return out, nil
}

// Render renders doc as a begin/end block:
//
//	begin
//	  key := value;
//	  table := begin
//	    nested := value;
//	  end;
//	end;
//
// Keys must be valid identifiers ([ErrInvalidName]). Values are rendered by
// [RenderValue]. Neither doc nor consts is modified, and no partial output is
// returned on error. Traces are logged with ctx.
func Render(ctx context.Context, doc *Document, consts *Constants, opts ...Option) (string, error) {
	r := renderer{ctx: ctx, consts: consts, opts: makeOptions(opts...)}

	err := r.block(doc, 0, 0, "")
	if err != nil {
		return "", err
	}

	r.buf.WriteByte(';')

	return r.buf.String(), nil
}

// RenderValue renders a single value at nesting depth 0.
//
//   - *Document: a nested begin/end block (without the trailing ';')
//   - []any: elements rendered recursively, joined with ", " inside [ ]
//   - bool: true or false
//   - int64, float64: decimal text (see [Number.String])
//   - string: the result of [Evaluate] if [IsExpression], otherwise verbatim
//
// Any other value fails with [ErrUnsupportedType].
func RenderValue(ctx context.Context, value any, consts *Constants, opts ...Option) (string, error) {
	r := renderer{ctx: ctx, consts: consts, opts: makeOptions(opts...)}

	err := r.value(value, 0, 0, "")
	if err != nil {
		return "", err
	}

	return r.buf.String(), nil
}

// renderer accumulates the output of a single render call.
type renderer struct {
	ctx    context.Context
	consts *Constants
	buf    strings.Builder
	opts   options
}

func (r *renderer) pad(depth int) {
	r.buf.WriteString(strings.Repeat(" ", depth*r.opts.indent))
}

// guard fails once nest exceeds the configured maximum depth.
func (r *renderer) guard(nest int, path string) error {
	if nest > r.opts.maxDepth {
		return ErrNestingTooDeep.With(
			slog.String("path", path),
			slog.Int("depth", nest),
			slog.Int("max", r.opts.maxDepth),
		)
	}

	return nil
}

// block renders a table whose closing "end" is indented to depth. nest counts
// enclosing tables and lists.
func (r *renderer) block(doc *Document, depth, nest int, path string) error {
	err := r.guard(nest, path)
	if err != nil {
		return err
	}

	r.buf.WriteString("begin\n")

	for key, value := range doc.All() {
		keyPath := joinPath(path, key)

		if !IsIdentifier(key) {
			return ErrInvalidName.With(
				slog.String("key", key),
				slog.String("path", keyPath),
			)
		}

		r.pad(depth + 1)
		r.buf.WriteString(key)
		r.buf.WriteString(" := ")

		err := r.value(value, depth+1, nest+1, keyPath)
		if err != nil {
			return err
		}

		r.buf.WriteString(";\n")
	}

	r.pad(depth)
	r.buf.WriteString("end")

	return nil
}

func (r *renderer) value(value any, depth, nest int, path string) error {
	switch v := value.(type) {
	case *Document:
		return r.block(v, depth, nest, path)

	case []any:
		return r.list(v, depth, nest, path)

	case bool:
		r.buf.WriteString(strconv.FormatBool(v))

		return nil

	case string:
		return r.text(v, path)
	}

	if n, ok := numberFromValue(value); ok {
		r.buf.WriteString(n.String())

		return nil
	}

	return ErrUnsupportedType.With(
		slog.String("path", path),
		slog.String("type", typeName(value)),
	)
}

func (r *renderer) list(items []any, depth, nest int, path string) error {
	err := r.guard(nest, path)
	if err != nil {
		return err
	}

	r.buf.WriteByte('[')

	for i, item := range items {
		if i > 0 {
			r.buf.WriteString(", ")
		}

		err := r.value(item, depth, nest+1, indexPath(path, i))
		if err != nil {
			return err
		}
	}

	r.buf.WriteByte(']')

	return nil
}

func (r *renderer) text(s, path string) error {
	if !IsExpression(s) {
		r.buf.WriteString(s)

		return nil
	}

	n, err := Evaluate(s, r.consts)
	if err != nil {
		return WrapError(err).With(slog.String("path", path))
	}

	r.opts.logger.TraceContext(r.ctx, "expression evaluated",
		slog.String("path", path),
		slog.String("expression", s),
		slog.Any("result", n),
	)

	r.buf.WriteString(n.String())

	return nil
}
