package lang

//go:generate go tool stringer --linecomment --type TokenKind --output token_string.go

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// TokenKind classifies a lexeme of a constant expression.
type TokenKind uint8

const (
	TokenUnknown  TokenKind = iota // unknown
	TokenInt                       // int
	TokenFloat                     // float
	TokenIdent                     // identifier
	TokenOperator                  // operator
	TokenFunction                  // function
)

// Token is a single lexeme of a constant expression.
type Token struct {
	Text   string    // source text, e.g. "pow()" or "-3"
	Offset int       // byte offset of Text in the expression body
	Kind   TokenKind // lexical class
}

// Name returns the function name of a function token ("pow" for "pow()"),
// or Text for any other kind.
func (t Token) Name() string {
	if t.Kind == TokenFunction {
		return strings.TrimSuffix(t.Text, "()")
	}

	return t.Text
}

// String returns the token text.
func (t Token) String() string { return t.Text }

func (t Token) attrs() []slog.Attr {
	return []slog.Attr{
		slog.String("token", t.Text),
		slog.Int("offset", t.Offset),
	}
}

// number converts an int or float token to a Number.
func (t Token) number() (Number, error) {
	switch t.Kind {
	case TokenInt:
		i, err := strconv.ParseInt(t.Text, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			// Integer literal wider than int64 is computed in float64.
			f, ferr := strconv.ParseFloat(t.Text, 64)
			if ferr != nil {
				return Number{}, ErrUnknownToken.Wrap(ferr).With(t.attrs()...)
			}

			return Float(f), nil
		}

		if err != nil {
			return Number{}, ErrUnknownToken.Wrap(err).With(t.attrs()...)
		}

		return Int(i), nil

	case TokenFloat:
		f, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return Number{}, ErrUnknownToken.Wrap(err).With(t.attrs()...)
		}

		return Float(f), nil

	default:
		return Number{}, ErrUnknownToken.With(t.attrs()...)
	}
}
