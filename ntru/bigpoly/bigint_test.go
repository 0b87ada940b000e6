package bigpoly

import (
	"math/big"
	"math/rand"
	"testing"
)

func randomBigIntPoly(r *rand.Rand, n int, bound int64) *BigIntPolynomial {
	c := make([]int64, n)
	for i := range c {
		c[i] = r.Int63n(2*bound+1) - bound
	}
	return FromInt64(c)
}

func equalCoeffs(a, b *BigIntPolynomial) bool {
	if len(a.Coeffs) != len(b.Coeffs) {
		return false
	}
	for i := range a.Coeffs {
		if a.Coeffs[i].Cmp(b.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

func TestKaratsubaAgreesWithSchoolbook(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		n := 1 + r.Intn(100)
		m := 1 + r.Intn(100)
		a := randomBigIntPoly(r, n, 1000)
		b := randomBigIntPoly(r, m, 1000)

		small := a.MultSmall(b)
		karat := a.MultBig(b)
		if !equalCoeffs(small, karat) {
			t.Fatalf("trial %d (n=%d m=%d): MultSmall != MultBig", trial, n, m)
		}
	}
}

func TestFoldModXN1NoSignFlip(t *testing.T) {
	p := FromInt64([]int64{1, 2, 3, 4, 5})
	folded := FoldModXN1(p, 3)
	want := FromInt64([]int64{1 + 4, 2 + 5, 3})
	if !equalCoeffs(folded, want) {
		t.Fatalf("FoldModXN1 = %v, want %v", folded.Coeffs, want.Coeffs)
	}
}

func TestRoundTiesToEven(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{5, 2, 2},  // 2.5 -> 2 (even)
		{7, 2, 4},  // 3.5 -> 4 (even)
		{-5, 2, -2},
		{3, 2, 2}, // 1.5 -> 2 (even)
		{4, 2, 2}, // exact
	}
	for _, c := range cases {
		p := FromInt64([]int64{c.num})
		got := p.Round(big.NewInt(c.den))
		if got.Coeffs[0].Int64() != c.want {
			t.Fatalf("Round(%d/%d) = %d, want %d", c.num, c.den, got.Coeffs[0].Int64(), c.want)
		}
	}
}

func TestHalveTruncatesTowardZero(t *testing.T) {
	p := FromInt64([]int64{5, -5, 4, -4})
	h := p.Halve()
	want := []int64{2, -2, 2, -2}
	for i, w := range want {
		if h.Coeffs[i].Int64() != w {
			t.Fatalf("Halve()[%d] = %d, want %d", i, h.Coeffs[i].Int64(), w)
		}
	}
}
