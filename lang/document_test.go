package lang

import (
	"slices"
	"testing"
)

func TestDocument_Order(t *testing.T) {
	d := NewDocument().
		Set("zeta", int64(1)).
		Set("alpha", int64(2)).
		Set("mid", int64(3))

	if got, want := d.Keys(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}

	d.Set("zeta", int64(9))

	if got, want := d.Keys(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("Keys after overwrite = %v, want %v", got, want)
	}

	if v, _ := d.Get("zeta"); v != int64(9) {
		t.Errorf("zeta = %v, want 9", v)
	}

	if !d.Delete("alpha") || d.Delete("alpha") {
		t.Error("Delete did not report presence correctly")
	}

	var keys []string
	for k := range d.All() {
		keys = append(keys, k)
	}

	if want := []string{"zeta", "mid"}; !slices.Equal(keys, want) {
		t.Errorf("All = %v, want %v", keys, want)
	}
}

func TestDocument_ZeroAndNil(t *testing.T) {
	var zero Document

	zero.Set("a", true)

	if zero.Len() != 1 {
		t.Errorf("zero value Len = %d, want 1", zero.Len())
	}

	var d *Document

	if d.Len() != 0 || d.Keys() != nil || d.Delete("a") || d.Clone() != nil {
		t.Error("nil document is not empty")
	}

	if _, ok := d.Get("a"); ok {
		t.Error("nil Get found a")
	}
}

func TestDocument_Clone(t *testing.T) {
	inner := doc("x", int64(1))
	list := []any{int64(1), doc("y", int64(2))}
	d := doc("inner", inner, "list", list)

	c := d.Clone()

	inner.Set("x", int64(100))
	list[0] = int64(100)
	list[1].(*Document).Set("y", int64(200))

	ci, _ := c.Get("inner")
	if v, _ := ci.(*Document).Get("x"); v != int64(1) {
		t.Errorf("clone inner.x = %v, want 1", v)
	}

	cl, _ := c.Get("list")
	if v := cl.([]any)[0]; v != int64(1) {
		t.Errorf("clone list[0] = %v, want 1", v)
	}

	if v, _ := cl.([]any)[1].(*Document).Get("y"); v != int64(2) {
		t.Errorf("clone list[1].y = %v, want 2", v)
	}
}
