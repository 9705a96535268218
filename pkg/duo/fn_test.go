package duo

import "testing"

func TestIdentity(t *testing.T) {
	t.Parallel()
	if Identity(42) != 42 {
		t.Fatalf("expected identity to return its argument")
	}
	if Identity("a") != "a" {
		t.Fatalf("expected identity to return its argument")
	}
}

func TestPairOf(t *testing.T) {
	t.Parallel()
	p := PairOf(1, "one")
	if p.First != 1 || p.Second != "one" {
		t.Fatalf("unexpected pair: %+v", p)
	}
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	if !ValueEqual(5, 5) {
		t.Fatalf("equal ints should compare equal")
	}
	if ValueEqual(5, 6) {
		t.Fatalf("distinct ints should not compare equal")
	}
	if !ValueEqual([]int{1, 2}, []int{1, 2}) {
		t.Fatalf("equal slices should compare equal")
	}
	if !ValueEqual(nil, nil) {
		t.Fatalf("two nils should compare equal")
	}
	var p *int
	if !ValueEqual(p, nil) {
		t.Fatalf("typed nil pointer should equal nil")
	}
	if ValueEqual(p, 5) {
		t.Fatalf("nil should not equal a value")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatalf("nil interface should be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatalf("nil pointer should be nil")
	}
	var m map[string]int
	if !IsNil(m) {
		t.Fatalf("nil map should be nil")
	}
	if IsNil(0) || IsNil("") {
		t.Fatalf("zero values are not nil")
	}
}
