// Package source decodes structured configuration documents into
// [lang.Document] values.
//
// TOML, YAML, and JSON input are supported. Every decoder preserves the
// order in which keys appear in the source text, so the rendered output
// follows the input.
//
//	doc, err := source.Decode(ctx, os.Stdin, source.FormatTOML)
//	if err != nil {
//		return err
//	}
//
// Integers decode to int64 and other numbers to float64. Values outside the
// renderable set (dates, nulls) are kept and rejected later by the renderer.
package source
