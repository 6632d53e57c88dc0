package profile

import "testing"

func TestMake(t *testing.T) {
	mode, path, quiet := Make(
		WithMode("cpu"),
		WithPath("/tmp/p"),
		WithQuiet(true),
	)()

	if mode != "cpu" || path != "/tmp/p" || !quiet {
		t.Errorf("Make() = %q, %q, %v", mode, path, quiet)
	}

	mode, path, quiet = Make(WithPath("x"), WithMode("heap"), WithPath("y"))()
	if mode != "heap" || path != "y" || quiet {
		t.Errorf("Make() = %q, %q, %v", mode, path, quiet)
	}
}

func TestStart_Disabled(t *testing.T) {
	p := Make().Start()
	if _, ok := p.(ignore); !ok {
		t.Fatalf("Start with empty mode = %T, want no-op", p)
	}

	p.Stop()

	p = Make(WithMode("no-such-mode")).Start()
	if _, ok := p.(ignore); !ok {
		t.Fatalf("Start with unknown mode = %T, want no-op", p)
	}

	p.Stop()
}
