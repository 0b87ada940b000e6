package poly

import "testing"

func TestProductFormMultFold(t *testing.T) {
	n := 40
	src := testSource{seed: 13}
	pf := GenerateRandomProductForm(n, 4, 4, 3, 3, &src)
	b := FromCoeffs(make([]int64, n))
	for i := range b.Coeffs {
		b.Coeffs[i] = int64(i%5) - 2
	}

	got := pf.Mult(b, 0)

	y := pf.F1.Mult(b, 0)
	z := pf.F2.Mult(y, 0)
	w := pf.F3.Mult(b, 0)
	want := z.Add(w, 0)

	if !got.Equal(want) {
		t.Fatalf("ProductFormPolynomial.Mult fold mismatch: got %v, want %v", got, want)
	}
}

func TestProductFormToIntegerMatchesMult(t *testing.T) {
	n := 30
	src := testSource{seed: 14}
	pf := GenerateRandomProductForm(n, 3, 3, 2, 2, &src)
	b := FromCoeffs(make([]int64, n))
	for i := range b.Coeffs {
		b.Coeffs[i] = int64(i%3) - 1
	}

	viaMult := pf.Mult(b, 0)
	viaDense := pf.ToIntegerPolynomial().Mult(b, 0)
	if !viaMult.Equal(viaDense) {
		t.Fatalf("pf.Mult != pf.ToIntegerPolynomial().Mult: %v vs %v", viaMult, viaDense)
	}
}

func TestProductFormBinaryRoundTrip(t *testing.T) {
	n := 40
	src := testSource{seed: 15}
	w := ProductFormWeights{N: n, DF1: 4, DF2: 4, DF3Ones: 3, DF3NegOnes: 3}
	pf := GenerateRandomProductForm(n, w.DF1, w.DF2, w.DF3Ones, w.DF3NegOnes, &src)

	data := pf.ToBinary()
	decoded := ProductFormFromBinary(data, w)

	if !pf.ToIntegerPolynomial().Equal(decoded.ToIntegerPolynomial()) {
		t.Fatalf("product-form round trip mismatch")
	}
}
