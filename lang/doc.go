// Package lang converts structured configuration documents into a block
// dialect with begin/end delimiters and "key := value;" statements.
//
// # Documents
//
// A [Document] is an ordered mapping from string keys to scalars (int64,
// float64, bool, string), lists ([]any), and nested documents. Decoders for
// concrete file formats live in package source.
//
// # Constants
//
// The reserved top-level table "def" declares numeric constants:
//
//	[def]
//	pi = 3.14
//	r = 5
//
// [ExtractConstants] moves these into a [Constants] table and removes the
// section from the document, so it never appears in the output.
//
// # Constant Expressions
//
// A string of the form "@( ... )" is a postfix (reverse-Polish) expression
// evaluated by [Evaluate] and replaced by its result:
//
//	area = "@(pi r r * *)"   # 78.5
//	vol  = "@(r 3 pow)"      # 125
//	d    = "@(2 7 - abs())"  # 5
//
// Operands are declared constants, integer literals, and float literals
// (digits.digits). Operators are + - * and the functions abs and pow,
// written with or without a trailing "()". There is no division.
//
// # Output
//
// [Convert] renders the remaining document:
//
//	begin
//	  area := 78.5;
//	  vol := 125;
//	  d := 5;
//	end;
//
// Nested tables render as nested blocks after ":=", lists render as
// "[a, b, c]", and strings that are not expressions are emitted verbatim.
package lang
