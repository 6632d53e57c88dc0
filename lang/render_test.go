package lang

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ardnew/blockconf/log"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "empty",
			doc:  NewDocument(),
			want: "begin\nend;",
		},
		{
			name: "server",
			doc: doc("server", doc(
				"host", "127.0.0.1",
				"port", int64(8080),
				"debug", true,
			)),
			want: "begin\n" +
				"  server := begin\n" +
				"    host := 127.0.0.1;\n" +
				"    port := 8080;\n" +
				"    debug := true;\n" +
				"  end;\n" +
				"end;",
		},
		{
			name: "playlist",
			doc: doc(
				"name", "Road Trip",
				"tracks", []any{"Track1", "Track2", "Track3"},
			),
			want: "begin\n" +
				"  name := Road Trip;\n" +
				"  tracks := [Track1, Track2, Track3];\n" +
				"end;",
		},
		{
			name: "scalars",
			doc: doc(
				"i", int64(-3),
				"f", 2.0,
				"off", false,
				"empty", "",
				"none", []any{},
				"nested", []any{int64(1), []any{2.5, "x"}},
			),
			want: "begin\n" +
				"  i := -3;\n" +
				"  f := 2.0;\n" +
				"  off := false;\n" +
				"  empty := ;\n" +
				"  none := [];\n" +
				"  nested := [1, [2.5, x]];\n" +
				"end;",
		},
		{
			name: "list of tables",
			doc: doc("items", []any{
				doc("a", int64(1)),
				doc("b", int64(2)),
			}),
			want: "begin\n" +
				"  items := [begin\n" +
				"    a := 1;\n" +
				"  end, begin\n" +
				"    b := 2;\n" +
				"  end];\n" +
				"end;",
		},
		{
			name: "empty nested table",
			doc:  doc("t", NewDocument()),
			want: "begin\n  t := begin\n  end;\nend;",
		},
		{
			name: "partial expression is verbatim",
			doc:  doc("a", "@(1 2 +", "b", "x @(1) y"),
			want: "begin\n  a := @(1 2 +;\n  b := x @(1) y;\nend;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(t.Context(), tt.doc, nil)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}

			if got != tt.want {
				t.Errorf("Render =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	d := doc(
		"def", doc("pi", 3.14, "r", int64(5)),
		"circle", doc(
			"radius", "@(r)",
			"area", "@(pi r r * *)",
			"squared", "@(r 2 pow)",
		),
		"eight", "@(2 3 pow)",
	)

	got, err := Convert(t.Context(), d)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := "begin\n" +
		"  circle := begin\n" +
		"    radius := 5;\n" +
		"    area := 78.5;\n" +
		"    squared := 25;\n" +
		"  end;\n" +
		"  eight := 8;\n" +
		"end;"

	if got != want {
		t.Errorf("Convert =\n%s\nwant\n%s", got, want)
	}

	if strings.Contains(got, "def") || strings.Contains(got, "pi") {
		t.Error("reserved section rendered")
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want *Error
		path string
	}{
		{
			name: "invalid key",
			doc:  doc("ok", int64(1), "bad-key!", int64(2)),
			want: ErrInvalidName,
			path: "bad-key!",
		},
		{
			name: "invalid nested key",
			doc:  doc("server", doc("2fast", true)),
			want: ErrInvalidName,
			path: "server.2fast",
		},
		{
			name: "invalid constant",
			doc:  doc("def", doc("bad-name", int64(1))),
			want: ErrInvalidIdentifier,
		},
		{
			name: "null",
			doc:  doc("a", nil),
			want: ErrUnsupportedType,
			path: "a",
		},
		{
			name: "datetime in list",
			doc:  doc("a", []any{int64(1), time.Unix(0, 0)}),
			want: ErrUnsupportedType,
			path: "a[1]",
		},
		{
			name: "map",
			doc:  doc("a", map[string]any{}),
			want: ErrUnsupportedType,
			path: "a",
		},
		{
			name: "unknown token",
			doc:  doc("t", doc("x", "@(4 2 /)")),
			want: ErrUnknownToken,
			path: "t.x",
		},
		{
			name: "undeclared constant",
			doc:  doc("x", "@(r 2 *)"),
			want: ErrUnknownToken,
			path: "x",
		},
		{
			name: "malformed",
			doc:  doc("x", "@(1 2)"),
			want: ErrMalformedExpression,
			path: "x",
		},
		{
			name: "insufficient operands",
			doc:  doc("xs", []any{"@(pow)"}),
			want: ErrInsufficientOperands,
			path: "xs[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(t.Context(), tt.doc)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			if got != "" {
				t.Errorf("partial output %q", got)
			}

			if tt.path != "" {
				if p := attrString(t, err, "path"); p != tt.path {
					t.Errorf("path = %q, want %q", p, tt.path)
				}
			}
		})
	}
}

// chain returns a document with n tables nested below the top level.
func chain(n int) *Document {
	d := doc("leaf", int64(1))
	for i := n; i > 1; i-- {
		d = doc(fmt.Sprintf("t%d", i), d)
	}

	return doc("t1", d)
}

func TestRender_MaxDepth(t *testing.T) {
	if _, err := Render(t.Context(), chain(5), nil, WithMaxDepth(5)); err != nil {
		t.Fatalf("depth 5 with max 5: %v", err)
	}

	_, err := Render(t.Context(), chain(5), nil, WithMaxDepth(4))
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("error = %v, want %v", err, ErrNestingTooDeep)
	}

	if p := attrString(t, err, "path"); p != "t1.t2.t3.t4.t5" {
		t.Errorf("path = %q", p)
	}

	lists := []any{int64(1)}
	for range 3 {
		lists = []any{lists}
	}

	if _, err := Render(t.Context(), doc("xs", lists), nil, WithMaxDepth(3)); !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("nested lists: error = %v, want %v", err, ErrNestingTooDeep)
	}

	if _, err := Render(t.Context(), chain(DefaultMaxDepth), nil); err != nil {
		t.Errorf("default depth: %v", err)
	}

	if _, err := Render(t.Context(), chain(DefaultMaxDepth+1), nil); !errors.Is(err, ErrNestingTooDeep) {
		t.Errorf("default depth + 1: error = %v", err)
	}
}

func TestRender_Indent(t *testing.T) {
	got, err := Render(t.Context(), doc("s", doc("a", int64(1))), nil, WithIndent(4))
	if err != nil {
		t.Fatal(err)
	}

	want := "begin\n    s := begin\n        a := 1;\n    end;\nend;"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_Idempotent(t *testing.T) {
	d := doc(
		"a", "@(pi 2 *)",
		"b", []any{doc("c", "@(pi)")},
	)
	c := mustConstants(t, map[string]Number{"pi": Float(3.14)})

	before := d.Clone()

	first, err := Render(t.Context(), d, c)
	if err != nil {
		t.Fatal(err)
	}

	second, err := Render(t.Context(), d, c)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("renders differ:\n%s\n%s", first, second)
	}

	again, _ := Render(t.Context(), before, c)
	if again != first {
		t.Error("document was modified by Render")
	}

	if n, _ := c.Lookup("pi"); c.Len() != 1 || n.String() != "3.14" {
		t.Error("constants were modified by Render")
	}
}

func TestConvert_Concurrent(t *testing.T) {
	var wg sync.WaitGroup

	results := make([]string, 8)
	errs := make([]error, 8)

	for i := range results {
		wg.Go(func() {
			d := doc(
				"def", doc("k", int64(i)),
				"v", "@(k 10 *)",
			)
			results[i], errs[i] = Convert(t.Context(), d)
		})
	}

	wg.Wait()

	for i, got := range results {
		if errs[i] != nil {
			t.Fatalf("Convert %d: %v", i, errs[i])
		}

		want := fmt.Sprintf("begin\n  v := %d;\nend;", i*10)
		if got != want {
			t.Errorf("Convert %d = %q, want %q", i, got, want)
		}
	}
}

func TestRenderValue(t *testing.T) {
	c := mustConstants(t, map[string]Number{"r": Int(5)})

	tests := []struct {
		value any
		want  string
	}{
		{int64(7), "7"},
		{1.25, "1.25"},
		{true, "true"},
		{"plain", "plain"},
		{"@(r r *)", "25"},
		{[]any{"a", int64(1)}, "[a, 1]"},
		{doc("x", int64(1)), "begin\n  x := 1;\nend"},
	}

	for _, tt := range tests {
		got, err := RenderValue(t.Context(), tt.value, c)
		if err != nil {
			t.Errorf("RenderValue(%#v): %v", tt.value, err)

			continue
		}

		if got != tt.want {
			t.Errorf("RenderValue(%#v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestConvert_ReservedKeyOption(t *testing.T) {
	d := doc(
		"constants", doc("n", int64(3)),
		"def", "kept",
		"v", "@(n n *)",
	)

	got, err := Convert(t.Context(), d, WithReservedKey("constants"))
	if err != nil {
		t.Fatal(err)
	}

	if want := "begin\n  def := kept;\n  v := 9;\nend;"; got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

type traceKey struct{}

// traceRecorder records each message with the trace ID of its context.
type traceRecorder struct {
	mu   sync.Mutex
	seen []string
}

func (*traceRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (h *traceRecorder) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seen = append(h.seen, fmt.Sprintf("%s@%v", r.Message, ctx.Value(traceKey{})))

	return nil
}

func (h *traceRecorder) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *traceRecorder) WithGroup(string) slog.Handler      { return h }

func TestConvert_TracesWithCallerContext(t *testing.T) {
	var h traceRecorder

	ctx := context.WithValue(t.Context(), traceKey{}, "conv-1")

	d := doc(
		"def", doc("r", int64(2)),
		"a", "@(r r *)",
		"b", []any{"@(r)"},
	)

	_, err := Convert(ctx, d, WithLogger(log.Logger{Logger: slog.New(&h)}))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"constant declared@conv-1",
		"expression evaluated@conv-1",
		"expression evaluated@conv-1",
		"render complete@conv-1",
	}

	if fmt.Sprint(h.seen) != fmt.Sprint(want) {
		t.Errorf("traces = %v, want %v", h.seen, want)
	}
}
