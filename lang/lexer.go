package lang

import (
	"unicode"
	"unicode/utf8"
)

// Lex splits the body of a constant expression into tokens.
//
// Whitespace separates tokens, but operators are recognized even when glued
// to their neighbours, so "r r*" lexes as r, r, *. A word that starts with a
// digit extends through letters, digits, '_' and '.', and is classified as an
// int, a float (digits.digits), or unknown. A '+' or '-' at the start of a
// token immediately followed by a digit begins a signed literal. An
// identifier immediately followed by "()" is a function token. Any other
// character becomes a single-character unknown token.
func Lex(src string) []Token {
	l := lexer{src: src}

	return l.run()
}

type lexer struct {
	src  string
	pos  int
	toks []Token
}

func (l *lexer) run() []Token {
	boundary := true // previous rune was whitespace or start of input

	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])

		switch {
		case unicode.IsSpace(r):
			l.pos += size
			boundary = true

			continue

		case isIdentStart(r):
			l.lexWord()

		case isDigit(r):
			l.lexNumber(l.pos)

		case (r == '+' || r == '-') && boundary && isDigit(l.peek(size)):
			start := l.pos
			l.pos += size
			l.lexNumber(start)

		case r == '+' || r == '-' || r == '*':
			l.emit(TokenOperator, l.pos, l.pos+size)

		default:
			l.emit(TokenUnknown, l.pos, l.pos+size)
		}

		boundary = false
	}

	return l.toks
}

func (l *lexer) peek(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return utf8.RuneError
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos+offset:])

	return r
}

func (l *lexer) emit(kind TokenKind, start, end int) {
	l.toks = append(l.toks, Token{
		Text:   l.src[start:end],
		Offset: start,
		Kind:   kind,
	})
	l.pos = end
}

// lexWord scans an identifier, or a function token if followed by "()".
func (l *lexer) lexWord() {
	start := l.pos
	end := l.scan(start, isIdentPart)

	if len(l.src)-end >= 2 && l.src[end:end+2] == "()" {
		l.emit(TokenFunction, start, end+2)

		return
	}

	l.emit(TokenIdent, start, end)
}

// lexNumber scans a numeric word beginning at l.pos; start may precede l.pos
// to include a sign.
func (l *lexer) lexNumber(start int) {
	end := l.scan(l.pos, func(r rune) bool { return isIdentPart(r) || r == '.' })
	l.emit(classifyNumber(l.src[l.pos:end]), start, end)
}

func (l *lexer) scan(from int, accept func(rune) bool) int {
	end := from

	for end < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[end:])
		if !accept(r) {
			break
		}

		end += size
	}

	return end
}

// classifyNumber reports whether an unsigned numeric word is an int
// ([0-9]+), a float ([0-9]+.[0-9]+), or neither.
func classifyNumber(s string) TokenKind {
	dot := -1

	for i := range len(s) {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
		case c == '.' && dot < 0:
			dot = i
		default:
			return TokenUnknown
		}
	}

	switch {
	case dot < 0:
		return TokenInt
	case dot > 0 && dot < len(s)-1:
		return TokenFloat
	default:
		return TokenUnknown
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsIdentifier reports whether s is a valid identifier: non-empty, starting
// with a letter or underscore, and containing only letters, digits, and
// underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !isIdentStart(r) {
			return false
		}

		if !isIdentPart(r) {
			return false
		}
	}

	return true
}
