package cmd

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/blockconf/lang"
	"github.com/ardnew/blockconf/source"
)

// stdinPath selects standard input as the input document.
const stdinPath = "-"

type (
	contextKey struct{}
	stdinKey   struct{}
	stdoutKey  struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithStdin returns a new context.Context whose standard input is r.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// WithStdout returns a new context.Context whose standard output is w.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// stdoutFrom returns the writer set by [WithStdout], or else the output
// stream of the running kong application.
func stdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// readDocument decodes the document at path, or standard input if path is
// [stdinPath].
func readDocument(
	ctx context.Context,
	path string,
	format source.Format,
) (*lang.Document, error) {
	r := stdinFrom(ctx)

	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	return source.Decode(ctx, bufio.NewReader(r), format)
}
