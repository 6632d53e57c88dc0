package lang

import (
	"testing"
)

func TestLex(t *testing.T) {
	type tok struct {
		text string
		kind TokenKind
	}

	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "empty",
			input: "   ",
			want:  nil,
		},
		{
			name:  "identifiers and operators",
			input: "pi r r * *",
			want: []tok{
				{"pi", TokenIdent}, {"r", TokenIdent}, {"r", TokenIdent},
				{"*", TokenOperator}, {"*", TokenOperator},
			},
		},
		{
			name:  "operator glued to identifier",
			input: "r r*",
			want:  []tok{{"r", TokenIdent}, {"r", TokenIdent}, {"*", TokenOperator}},
		},
		{
			name:  "operator between identifiers",
			input: "a-b",
			want:  []tok{{"a", TokenIdent}, {"-", TokenOperator}, {"b", TokenIdent}},
		},
		{
			name:  "function call form",
			input: "2 3 pow()",
			want:  []tok{{"2", TokenInt}, {"3", TokenInt}, {"pow()", TokenFunction}},
		},
		{
			name:  "bare function name",
			input: "2 abs",
			want:  []tok{{"2", TokenInt}, {"abs", TokenIdent}},
		},
		{
			name:  "float and signed literals",
			input: "1.5 -3 +2.25 +",
			want: []tok{
				{"1.5", TokenFloat}, {"-3", TokenInt}, {"+2.25", TokenFloat},
				{"+", TokenOperator},
			},
		},
		{
			name:  "minus after literal is an operator",
			input: "3-2",
			want:  []tok{{"3", TokenInt}, {"-", TokenOperator}, {"2", TokenInt}},
		},
		{
			name:  "division is unknown",
			input: "4 2 /",
			want:  []tok{{"4", TokenInt}, {"2", TokenInt}, {"/", TokenUnknown}},
		},
		{
			name:  "malformed numbers",
			input: "1e5 1. 1.2.3 3pow",
			want: []tok{
				{"1e5", TokenUnknown}, {"1.", TokenUnknown},
				{"1.2.3", TokenUnknown}, {"3pow", TokenUnknown},
			},
		},
		{
			name:  "detached parentheses",
			input: "abs ()",
			want:  []tok{{"abs", TokenIdent}, {"(", TokenUnknown}, {")", TokenUnknown}},
		},
		{
			name:  "unicode identifier",
			input: "π_2 ×",
			want:  []tok{{"π_2", TokenIdent}, {"×", TokenUnknown}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lex(tt.input)

			if len(got) != len(tt.want) {
				t.Fatalf("Lex(%q) = %v, want %d tokens", tt.input, got, len(tt.want))
			}

			for i, w := range tt.want {
				if got[i].Text != w.text || got[i].Kind != w.kind {
					t.Errorf("token %d: got %q (%v), want %q (%v)",
						i, got[i].Text, got[i].Kind, w.text, w.kind)
				}
			}
		})
	}
}

func TestLex_Offsets(t *testing.T) {
	toks := Lex("  x 12*")

	want := []int{2, 4, 6}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, off := range want {
		if toks[i].Offset != off {
			t.Errorf("token %q: got offset %d, want %d", toks[i].Text, toks[i].Offset, off)
		}
	}
}

func TestToken_Name(t *testing.T) {
	toks := Lex("pow() abs x")

	for i, want := range []string{"pow", "abs", "x"} {
		if got := toks[i].Name(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"server", true},
		{"_private", true},
		{"port8080", true},
		{"snake_case_2", true},
		{"Ωmega", true},
		{"", false},
		{"8080port", false},
		{"bad-key!", false},
		{"has space", false},
		{"dot.ted", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsIdentifier(tt.input); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenUnknown, "unknown"},
		{TokenInt, "int"},
		{TokenFloat, "float"},
		{TokenIdent, "identifier"},
		{TokenOperator, "operator"},
		{TokenFunction, "function"},
		{TokenFunction + 1, "TokenKind(6)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TokenKind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}
