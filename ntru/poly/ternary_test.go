package poly

import "testing"

func TestNewDenseTernaryPolynomialRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range coefficient")
		}
	}()
	NewDenseTernaryPolynomial(FromCoeffs([]int64{0, 1, -1, 2}))
}

func TestGenerateRandomDenseTernaryWeights(t *testing.T) {
	n := 100
	src := testSource{seed: 21}
	d := GenerateRandomDenseTernary(n, 12, 13, &src)
	dense := d.ToIntegerPolynomial()
	if got := dense.Count(1); got != 12 {
		t.Fatalf("Count(1) = %d, want 12", got)
	}
	if got := dense.Count(-1); got != 13 {
		t.Fatalf("Count(-1) = %d, want 13", got)
	}
}

func TestDenseTernaryClear(t *testing.T) {
	n := 10
	src := testSource{seed: 22}
	d := GenerateRandomDenseTernary(n, 2, 2, &src)
	d.Clear()
	dense := d.ToIntegerPolynomial()
	for _, v := range dense.Coeffs {
		if v != 0 {
			t.Fatalf("Clear did not zeroize: %v", dense)
		}
	}
}
