package lang

import (
	"log/slog"
	"strings"
)

const (
	exprOpen  = "@("
	exprClose = ")"
)

// IsExpression reports whether s is a constant expression, i.e. it begins
// with "@(" and ends with ")".
func IsExpression(s string) bool {
	return len(s) >= len(exprOpen)+len(exprClose) &&
		strings.HasPrefix(s, exprOpen) &&
		strings.HasSuffix(s, exprClose)
}

// function describes a built-in function callable from an expression.
type function struct {
	call  func(args []Number) Number
	arity int
}

// functions are the built-ins, callable as "name" or "name()".
var functions = map[string]function{
	"abs": {arity: 1, call: func(a []Number) Number { return absNum(a[0]) }},
	"pow": {arity: 2, call: func(a []Number) Number { return pow(a[0], a[1]) }},
}

// operators are the binary arithmetic operators.
var operators = map[string]func(a, b Number) Number{
	"+": add,
	"-": sub,
	"*": mul,
}

// Evaluate evaluates a postfix constant expression against consts.
//
// The "@(" and ")" delimiters are stripped if present. Tokens are processed
// strictly left to right by a stack machine:
//   - a declared constant pushes its value
//   - an int or float literal pushes itself
//   - "+", "-", "*" pop b then a and push a op b
//   - "abs" pops one value; "pow" pops the exponent then the base
//
// Evaluation fails with [ErrInsufficientOperands] when an operator or
// function finds too few values, [ErrUnknownToken] for any other token, and
// [ErrMalformedExpression] unless exactly one value remains at the end.
func Evaluate(expr string, consts *Constants) (Number, error) {
	body := expr
	if IsExpression(expr) {
		body = expr[len(exprOpen) : len(expr)-len(exprClose)]
	}

	var stack operandStack

	for _, tok := range Lex(body) {
		err := step(&stack, tok, consts)
		if err != nil {
			return Number{}, err.With(slog.String("expression", expr))
		}
	}

	if stack.len() != 1 {
		return Number{}, ErrMalformedExpression.With(
			slog.String("expression", expr),
			slog.Int("stack", stack.len()),
		)
	}

	return stack.pop(), nil
}

// step applies a single token to the stack.
func step(stack *operandStack, tok Token, consts *Constants) *Error {
	switch tok.Kind {
	case TokenInt, TokenFloat:
		n, err := tok.number()
		if err != nil {
			return WrapError(err)
		}

		stack.push(n)

		return nil

	case TokenIdent:
		if n, ok := consts.Lookup(tok.Text); ok {
			stack.push(n)

			return nil
		}

		if fn, ok := functions[tok.Text]; ok {
			return invoke(stack, tok, fn)
		}

	case TokenFunction:
		if fn, ok := functions[tok.Name()]; ok {
			return invoke(stack, tok, fn)
		}

	case TokenOperator:
		if op, ok := operators[tok.Text]; ok {
			return invoke(stack, tok, function{
				arity: 2,
				call:  func(a []Number) Number { return op(a[0], a[1]) },
			})
		}

	case TokenUnknown:
	}

	return ErrUnknownToken.With(tok.attrs()...)
}

// invoke pops fn's arguments, first argument deepest, and pushes the result.
func invoke(stack *operandStack, tok Token, fn function) *Error {
	if stack.len() < fn.arity {
		return ErrInsufficientOperands.With(
			append(tok.attrs(),
				slog.Int("want", fn.arity),
				slog.Int("have", stack.len()),
			)...,
		)
	}

	stack.push(fn.call(stack.popN(fn.arity)))

	return nil
}

// operandStack is the evaluation stack of a single expression.
type operandStack struct {
	data []Number
}

func (s *operandStack) len() int { return len(s.data) }

func (s *operandStack) push(n Number) { s.data = append(s.data, n) }

func (s *operandStack) pop() Number {
	n := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]

	return n
}

// popN removes the top n values and returns them in push order.
func (s *operandStack) popN(n int) []Number {
	args := make([]Number, n)
	copy(args, s.data[len(s.data)-n:])
	s.data = s.data[:len(s.data)-n]

	return args
}
