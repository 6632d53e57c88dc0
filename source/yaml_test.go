package source

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/blockconf/lang"
)

func TestDecodeYAML_Order(t *testing.T) {
	input := `
zeta: 1
alpha:
  second: b
  first: a
mid: [3, 2, 1]
`

	doc, err := DecodeYAML(t.Context(), strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := doc.Keys(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}

	alpha, _ := doc.Get("alpha")
	if got, want := alpha.(*lang.Document).Keys(), []string{"second", "first"}; !slices.Equal(got, want) {
		t.Errorf("alpha Keys = %v, want %v", got, want)
	}
}

func TestDecodeYAML_Numbers(t *testing.T) {
	input := `
small: 7
negative: -3
big: 18446744073709551615
ratio: 0.25
`

	doc, err := DecodeYAML(t.Context(), strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		want any
	}{
		{"small", int64(7)},
		{"negative", int64(-3)},
		{"big", float64(math.MaxUint64)},
		{"ratio", 0.25},
	}

	for _, tt := range tests {
		if got, _ := doc.Get(tt.key); got != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.key, got, tt.want)
		}
	}
}

func TestDecodeYAML_Convert(t *testing.T) {
	input := `
def:
  pi: 3.14
  r: 5
area: "@(pi r r * *)"
hosts:
  - name: a
    port: 1
  - name: b
    port: "@(r 2 *)"
`

	doc, err := DecodeYAML(t.Context(), strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := "begin\n" +
		"  area := 78.5;\n" +
		"  hosts := [begin\n" +
		"    name := a;\n" +
		"    port := 1;\n" +
		"  end, begin\n" +
		"    name := b;\n" +
		"    port := 10;\n" +
		"  end];\n" +
		"end;"

	if got := render(t, doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecodeYAML_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *lang.Error
	}{
		{"null value", "a: null\n", lang.ErrUnsupportedType},
		{"integer key", "1: one\n", lang.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeYAML(t.Context(), strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodeYAML: %v", err)
			}

			_, err = lang.Convert(t.Context(), doc)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeYAML_NullDocument(t *testing.T) {
	doc, err := DecodeYAML(t.Context(), strings.NewReader("# only a comment\n"))
	if err != nil {
		t.Fatal(err)
	}

	if got := render(t, doc); got != "begin\nend;" {
		t.Errorf("got %q", got)
	}
}
