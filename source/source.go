package source

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/blockconf/lang"
)

// Decode reads a complete document of the given format from r.
//
// The top-level value must be a mapping ([ErrNotTable]); empty input yields
// an empty document. Syntax errors are reported as [ErrDecode] wrapping the
// parser's error.
func Decode(ctx context.Context, r io.Reader, format Format) (*lang.Document, error) {
	switch format {
	case FormatTOML:
		return DecodeTOML(r)
	case FormatYAML:
		return DecodeYAML(ctx, r)
	case FormatJSON:
		return DecodeJSON(r)
	}

	return nil, ErrUnknownFormat.With(slog.String("format", format.String()))
}

// decodeError wraps a parser error with the input format.
func decodeError(format Format, err error) error {
	return ErrDecode.Wrap(err).With(slog.String("format", format.String()))
}

// notTable reports a top-level value that is not a mapping.
func notTable(format Format, value any) error {
	return ErrNotTable.With(
		slog.String("format", format.String()),
		slog.String("type", typeName(value)),
	)
}
