// Package bigpoly provides arbitrary-precision polynomial coefficient
// vectors (BigIntPolynomial, BigDecimalPolynomial) used by the resultant
// pipeline, where intermediate and final values routinely exceed the range
// of a fixed machine word.
package bigpoly

import "math/big"

// BigIntPolynomial is a coefficient vector of arbitrary-precision integers.
// Lengths may grow during Karatsuba multiplication before being folded back
// modulo X^N-1 by the caller.
type BigIntPolynomial struct {
	Coeffs []*big.Int
}

// New allocates a BigIntPolynomial of length n, all coefficients zero.
func New(n int) *BigIntPolynomial {
	c := make([]*big.Int, n)
	for i := range c {
		c[i] = new(big.Int)
	}
	return &BigIntPolynomial{Coeffs: c}
}

// FromInt64 builds a BigIntPolynomial from int64 coefficients.
func FromInt64(c []int64) *BigIntPolynomial {
	out := New(len(c))
	for i, v := range c {
		out.Coeffs[i].SetInt64(v)
	}
	return out
}

// Clone deep-copies the polynomial.
func (p *BigIntPolynomial) Clone() *BigIntPolynomial {
	out := New(len(p.Coeffs))
	for i, c := range p.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// MultSmall is the schoolbook O(n^2) multiplication, returned without
// reduction mod X^N-1 (length 2n-1).
func (p *BigIntPolynomial) MultSmall(q *BigIntPolynomial) *BigIntPolynomial {
	n, m := len(p.Coeffs), len(q.Coeffs)
	out := New(n + m - 1)
	tmp := new(big.Int)
	for i, a := range p.Coeffs {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.Coeffs {
			if b.Sign() == 0 {
				continue
			}
			tmp.Mul(a, b)
			out.Coeffs[i+j].Add(out.Coeffs[i+j], tmp)
		}
	}
	return out
}

// karatsubaThreshold below this degree, MultBig falls back to MultSmall.
const karatsubaThreshold = 48

// MultBig multiplies via Karatsuba: split at n1 = floor(n/2), recurse on
// (a1,b1), (a2,b2) and (a1+a2,b1+b2), combine with the standard
// three-product identity. The result has length len(p)+len(q)-1 and is not
// reduced mod X^N-1; the caller folds the circular wraparound.
func (p *BigIntPolynomial) MultBig(q *BigIntPolynomial) *BigIntPolynomial {
	n := len(p.Coeffs)
	m := len(q.Coeffs)
	if n <= karatsubaThreshold || m <= karatsubaThreshold {
		return p.MultSmall(q)
	}
	size := n
	if m > size {
		size = m
	}
	n1 := size / 2

	a1, a2 := splitAt(p.Coeffs, n1)
	b1, b2 := splitAt(q.Coeffs, n1)

	pa1 := &BigIntPolynomial{Coeffs: a1}
	pa2 := &BigIntPolynomial{Coeffs: a2}
	pb1 := &BigIntPolynomial{Coeffs: b1}
	pb2 := &BigIntPolynomial{Coeffs: b2}

	z0 := pa1.MultBig(pb1)
	z2 := pa2.MultBig(pb2)
	sumA := addVec(a1, a2)
	sumB := addVec(b1, b2)
	z1 := (&BigIntPolynomial{Coeffs: sumA}).MultBig(&BigIntPolynomial{Coeffs: sumB})
	// z1 -= z0 + z2
	z1 = subVecPoly(z1, z0)
	z1 = subVecPoly(z1, z2)

	outLen := n + m - 1
	out := New(outLen)
	addAt(out, z0, 0)
	addAt(out, z1, n1)
	addAt(out, z2, 2*n1)
	return out
}

func splitAt(c []*big.Int, n1 int) (lo, hi []*big.Int) {
	lo = make([]*big.Int, n1)
	for i := 0; i < n1; i++ {
		if i < len(c) {
			lo[i] = new(big.Int).Set(c[i])
		} else {
			lo[i] = new(big.Int)
		}
	}
	hiLen := len(c) - n1
	if hiLen < 1 {
		hiLen = 1
	}
	hi = make([]*big.Int, hiLen)
	for i := range hi {
		idx := n1 + i
		if idx < len(c) {
			hi[i] = new(big.Int).Set(c[idx])
		} else {
			hi[i] = new(big.Int)
		}
	}
	return lo, hi
}

func addVec(a, b []*big.Int) []*big.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
		if i < len(a) {
			out[i].Add(out[i], a[i])
		}
		if i < len(b) {
			out[i].Add(out[i], b[i])
		}
	}
	return out
}

func subVecPoly(a *BigIntPolynomial, b *BigIntPolynomial) *BigIntPolynomial {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := New(n)
	for i := 0; i < n; i++ {
		if i < len(a.Coeffs) {
			out.Coeffs[i].Add(out.Coeffs[i], a.Coeffs[i])
		}
		if i < len(b.Coeffs) {
			out.Coeffs[i].Sub(out.Coeffs[i], b.Coeffs[i])
		}
	}
	return out
}

func addAt(dst *BigIntPolynomial, src *BigIntPolynomial, offset int) {
	for i, c := range src.Coeffs {
		idx := i + offset
		if idx < len(dst.Coeffs) {
			dst.Coeffs[idx].Add(dst.Coeffs[idx], c)
		}
	}
}

// Mod reduces every coefficient modulo m into [0,m).
func (p *BigIntPolynomial) Mod(m *big.Int) *BigIntPolynomial {
	out := p.Clone()
	for _, c := range out.Coeffs {
		c.Mod(c, m)
	}
	return out
}

// Halve divides every coefficient by 2, rounding toward zero (used by
// resultant/BigDecimal inverse-lift scaling steps).
func (p *BigIntPolynomial) Halve() *BigIntPolynomial {
	out := p.Clone()
	two := big.NewInt(2)
	for _, c := range out.Coeffs {
		c.Quo(c, two)
	}
	return out
}

// Round divides every coefficient by d, rounding to the nearest integer
// with ties rounded to even.
func (p *BigIntPolynomial) Round(d *big.Int) *BigIntPolynomial {
	out := New(len(p.Coeffs))
	for i, c := range p.Coeffs {
		out.Coeffs[i] = roundTiesToEven(c, d)
	}
	return out
}

func roundTiesToEven(num, den *big.Int) *big.Int {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, den, r)
	r.Abs(r)
	twice := new(big.Int).Lsh(r, 1)
	cmp := twice.Cmp(new(big.Int).Abs(den))
	if cmp < 0 {
		return q
	}
	if cmp > 0 {
		return bumpAwayFromZero(q, num, den)
	}
	// exact tie: round to even
	if new(big.Int).And(q, big.NewInt(1)).Sign() == 0 {
		return q
	}
	return bumpAwayFromZero(q, num, den)
}

func bumpAwayFromZero(q, num, den *big.Int) *big.Int {
	sign := num.Sign() * den.Sign()
	if sign >= 0 {
		return new(big.Int).Add(q, big.NewInt(1))
	}
	return new(big.Int).Sub(q, big.NewInt(1))
}

// FoldModXN1 circularly folds a polynomial of arbitrary length into degree
// < n by adding wrapped coefficients (no sign flip, matching the X^N-1
// ring).
func FoldModXN1(p *BigIntPolynomial, n int) *BigIntPolynomial {
	out := New(n)
	for i, c := range p.Coeffs {
		out.Coeffs[i%n].Add(out.Coeffs[i%n], c)
	}
	return out
}
