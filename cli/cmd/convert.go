package cmd

import (
	"context"
	"log/slog"

	"github.com/google/renameio/v2"

	"github.com/ardnew/blockconf/lang"
	"github.com/ardnew/blockconf/log"
	"github.com/ardnew/blockconf/source"
)

// outputMode is the permission mode of a written output file.
const outputMode = 0o644

// Convert renders a configuration document as begin/end blocks.
type Convert struct {
	Output   string        `help:"Output file path."                         placeholder:"PATH" required:""          short:"o" type:"path"`
	Input    string        `help:"Input file path, or - for standard input." placeholder:"PATH" default:"-"         short:"i"`
	Format   source.Format `help:"Input format (${formats})."                                   default:"toml"      short:"f"`
	MaxDepth int           `help:"Maximum nesting depth of tables and lists."                   default:"${maxDepth}"`
	Indent   int           `help:"Spaces per nesting level."                                    default:"${indent}"`
	Reserved string        `help:"Top-level key that declares constants."                       default:"${reserved}"`
}

// Run executes the convert command.
//
// The output file is replaced atomically and only after the whole document
// rendered successfully.
func (c *Convert) Run(ctx context.Context) error {
	doc, err := readDocument(ctx, c.Input, c.Format)
	if err != nil {
		return ErrParseInput.Wrap(err).With(
			slog.String("input", c.Input),
			slog.String("format", c.Format.String()),
		)
	}

	out, err := lang.Convert(ctx, doc,
		lang.WithMaxDepth(c.MaxDepth),
		lang.WithIndent(c.Indent),
		lang.WithReservedKey(c.Reserved),
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return ErrConvert.Wrap(err).With(slog.String("input", c.Input))
	}

	err = renameio.WriteFile(c.Output, []byte(out), outputMode)
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("output", c.Output))
	}

	log.DebugContext(ctx, "output written",
		slog.String("input", c.Input),
		slog.String("output", c.Output),
		slog.Int("bytes", len(out)),
	)

	return nil
}
