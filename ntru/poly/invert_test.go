package poly

import "testing"

func TestInvertF2RoundTrip(t *testing.T) {
	n := 11
	src := testSource{seed: 1}
	for trial := 0; trial < 20; trial++ {
		f := GenerateRandomDenseTernary(n, 3, 2, &src).ToIntegerPolynomial()
		inv, ok := f.InvertF2()
		if !ok {
			continue
		}
		prod := f.Mult(inv, 2)
		if prod.Count(1) != 1 || prod.Coeffs[0] != 1 {
			t.Fatalf("f*inv mod 2 = %v, want constant 1", prod)
		}
		for i := 1; i < n; i++ {
			if prod.Coeffs[i] != 0 {
				t.Fatalf("f*inv mod 2 = %v, want constant 1", prod)
			}
		}
		return
	}
	t.Fatal("no invertible candidate found in 20 trials")
}

func TestInvertF3RoundTrip(t *testing.T) {
	n := 11
	src := testSource{seed: 2}
	for trial := 0; trial < 20; trial++ {
		f := GenerateRandomDenseTernary(n, 3, 2, &src).ToIntegerPolynomial()
		inv, ok := f.InvertF3()
		if !ok {
			continue
		}
		prod := f.Mult(inv, 3)
		if prod.Coeffs[0] != 1 {
			t.Fatalf("f*inv mod 3 = %v, want constant 1", prod)
		}
		for i := 1; i < n; i++ {
			if prod.Coeffs[i] != 0 {
				t.Fatalf("f*inv mod 3 = %v, want constant 1", prod)
			}
		}
		return
	}
	t.Fatal("no invertible candidate found in 20 trials")
}

func TestInvertFqRoundTrip(t *testing.T) {
	n := 11
	q := int64(32)
	src := testSource{seed: 3}
	for trial := 0; trial < 20; trial++ {
		f := GenerateRandomDenseTernary(n, 3, 3, &src).ToIntegerPolynomial()
		f.Coeffs[0]++ // make the coefficient sum odd, so X+1 does not divide f mod 2
		inv, ok := f.InvertFq(q)
		if !ok {
			continue
		}
		prod := f.Mult(inv, q)
		if prod.Coeffs[0] != 1 {
			t.Fatalf("f*inv mod %d = %v, want constant 1", q, prod)
		}
		for i := 1; i < n; i++ {
			if prod.Coeffs[i] != 0 {
				t.Fatalf("f*inv mod %d = %v, want constant 1", q, prod)
			}
		}
		return
	}
	t.Fatal("no invertible candidate found in 20 trials")
}

// testSource is a minimal deterministic Source for package-local tests that
// must not depend on ntru/ternary (it would create an import cycle back
// into poly).
type testSource struct {
	seed uint64
}

func (s *testSource) FillRandom(buf []byte) error {
	for i := range buf {
		s.seed = s.seed*6364136223846793005 + 1442695040888963407
		buf[i] = byte(s.seed >> 56)
	}
	return nil
}
