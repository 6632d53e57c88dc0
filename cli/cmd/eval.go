package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/blockconf/lang"
	"github.com/ardnew/blockconf/log"
	"github.com/ardnew/blockconf/source"
)

// Eval evaluates a single postfix constant expression and prints the result.
type Eval struct {
	Expression string            `arg:""                                                         help:"Postfix expression, with or without the @( ) delimiters."`
	Define     map[string]string `help:"Declare a constant; overrides --input."                  placeholder:"NAME=VALUE" short:"D"`
	Input      string            `help:"Document whose reserved section declares constants."     placeholder:"PATH"       short:"i"`
	Format     source.Format     `help:"Input format (${formats})."                              default:"toml"           short:"f"`
	Reserved   string            `help:"Top-level key that declares constants."                  default:"${reserved}"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	consts, err := e.constants(ctx)
	if err != nil {
		return err
	}

	n, err := lang.Evaluate(e.Expression, consts)
	if err != nil {
		return ErrEvaluate.Wrap(err)
	}

	log.DebugContext(ctx, "expression evaluated",
		slog.String("expression", e.Expression),
		slog.Int("constants", consts.Len()),
		slog.Any("result", n),
	)

	_, err = fmt.Fprintln(stdoutFrom(ctx), n)

	return err
}

// constants collects the constants declared by --input and --define.
func (e *Eval) constants(ctx context.Context) (*lang.Constants, error) {
	values := make(map[string]lang.Number)

	if e.Input != "" {
		doc, err := readDocument(ctx, e.Input, e.Format)
		if err != nil {
			return nil, ErrParseInput.Wrap(err).With(slog.String("input", e.Input))
		}

		declared, err := lang.ExtractConstants(ctx, doc,
			lang.WithReservedKey(e.Reserved),
			lang.WithLogger(log.Default()),
		)
		if err != nil {
			return nil, ErrDefine.Wrap(err).With(slog.String("input", e.Input))
		}

		maps.Insert(values, declared.All())
	}

	for _, name := range slices.Sorted(maps.Keys(e.Define)) {
		n, err := lang.ParseNumber(e.Define[name])
		if err != nil {
			return nil, ErrDefine.Wrap(err).With(
				slog.String("name", name),
				slog.String("value", e.Define[name]),
			)
		}

		values[name] = n
	}

	consts, err := lang.NewConstants(values)
	if err != nil {
		return nil, ErrDefine.Wrap(err)
	}

	return consts, nil
}
