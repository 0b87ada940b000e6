package poly

import "testing"

func TestSparseDenseMultEquivalence(t *testing.T) {
	n := 50
	src := testSource{seed: 7}
	s := GenerateRandomSparseTernary(n, 10, 11, &src)
	b := FromCoeffs(make([]int64, n))
	for i := range b.Coeffs {
		b.Coeffs[i] = int64(i%7) - 3
	}

	viaSparse := s.Mult(b, 0)
	viaDense := s.ToIntegerPolynomial().Mult(b, 0)
	if !viaSparse.Equal(viaDense) {
		t.Fatalf("sparse.Mult != dense.Mult: %v vs %v", viaSparse, viaDense)
	}
}

func TestSparseToBinaryRoundTrip(t *testing.T) {
	n := 1000
	src := testSource{seed: 8}
	s := GenerateRandomSparseTernary(n, 100, 101, &src)

	data := s.ToBinary()
	decoded := SparseFromBinary(data, n, 100, 101)

	if len(decoded.Ones) != len(s.Ones) || len(decoded.NegOnes) != len(s.NegOnes) {
		t.Fatalf("length mismatch after round-trip")
	}
	for i := range s.Ones {
		if s.Ones[i] != decoded.Ones[i] {
			t.Fatalf("Ones[%d] = %d, want %d", i, decoded.Ones[i], s.Ones[i])
		}
	}
	for i := range s.NegOnes {
		if s.NegOnes[i] != decoded.NegOnes[i] {
			t.Fatalf("NegOnes[%d] = %d, want %d", i, decoded.NegOnes[i], s.NegOnes[i])
		}
	}
}

func TestSparseClear(t *testing.T) {
	n := 20
	src := testSource{seed: 9}
	s := GenerateRandomSparseTernary(n, 3, 3, &src)
	s.Clear()
	for _, v := range s.Ones {
		if v != 0 {
			t.Fatalf("Ones not zeroized: %v", s.Ones)
		}
	}
	for _, v := range s.NegOnes {
		if v != 0 {
			t.Fatalf("NegOnes not zeroized: %v", s.NegOnes)
		}
	}
}

func TestSparseDisjointAndDistinct(t *testing.T) {
	n := 30
	src := testSource{seed: 11}
	s := GenerateRandomSparseTernary(n, 5, 5, &src)
	seen := map[int]bool{}
	for _, v := range append(append([]int(nil), s.Ones...), s.NegOnes...) {
		if seen[v] {
			t.Fatalf("index %d drawn twice", v)
		}
		seen[v] = true
	}
}
