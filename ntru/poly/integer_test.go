package poly

import "testing"

func TestMultCommutative(t *testing.T) {
	a := FromCoeffs([]int64{4, -1, 9, 2, 1, -5, 12, -7, 0, -9, 5})
	b := FromCoeffs([]int64{-6, 0, 0, 13, 3, -2, -4, 10, 11, 2, -1})
	want := []int64{2, -189, 77, 124, -29, 0, -75, 124, -49, 267, 34}

	ab := a.Mult(b, 0)
	ba := b.Mult(a, 0)
	if !ab.Equal(ba) {
		t.Fatalf("mult not commutative: a*b=%v b*a=%v", ab, ba)
	}
	if !ab.Equal(FromCoeffs(want)) {
		t.Fatalf("a*b = %v, want %v", ab, want)
	}
}

func TestMultAssociative(t *testing.T) {
	n := 11
	a := FromCoeffs([]int64{1, 2, 3, -1, -2, -3, 0, 4, -4, 5, -5})
	b := FromCoeffs([]int64{2, -1, 0, 3, 1, -2, 4, -3, 2, 0, -1})
	c := FromCoeffs([]int64{-1, 1, -1, 1, -1, 1, -1, 1, -1, 1, -1})
	if a.N() != n || b.N() != n || c.N() != n {
		t.Fatalf("fixture length mismatch")
	}

	left := a.Mult(b, 0).Mult(c, 0)
	right := a.Mult(b.Mult(c, 0), 0)
	if !left.Equal(right) {
		t.Fatalf("mult not associative: (a*b)*c=%v a*(b*c)=%v", left, right)
	}
}

func TestModCenterRange(t *testing.T) {
	p := FromCoeffs([]int64{0, 1, 2, 3, 4, 5, 6, 7})
	c := p.ModCenter(8)
	want := []int64{0, 1, 2, 3, 4, -3, -2, -1}
	if !c.Equal(FromCoeffs(want)) {
		t.Fatalf("ModCenter(8) = %v, want %v", c, want)
	}
}

func TestEnsurePositive(t *testing.T) {
	p := FromCoeffs([]int64{-1, -2, 3, 7})
	p.EnsurePositive(5)
	want := []int64{4, 3, 3, 2}
	if !p.Equal(FromCoeffs(want)) {
		t.Fatalf("EnsurePositive(5) = %v, want %v", p, want)
	}
}

func TestCount(t *testing.T) {
	p := FromCoeffs([]int64{1, 0, -1, 1, 0, 0, -1})
	if got := p.Count(1); got != 2 {
		t.Fatalf("Count(1) = %d, want 2", got)
	}
	if got := p.Count(0); got != 3 {
		t.Fatalf("Count(0) = %d, want 3", got)
	}
	if got := p.Count(-1); got != 2 {
		t.Fatalf("Count(-1) = %d, want 2", got)
	}
}

func TestMult3(t *testing.T) {
	p := FromCoeffs([]int64{1, 2, 3})
	p.Mult3(5)
	want := []int64{3, 1, 4}
	if !p.Equal(FromCoeffs(want)) {
		t.Fatalf("Mult3(5) = %v, want %v", p, want)
	}
}
