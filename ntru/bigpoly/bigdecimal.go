package bigpoly

import "math/big"

// DefaultPrec is the big.Float precision (in bits) used when none is
// specified; it mirrors the 128-bit default embedding precision the
// teacher's Preimage_Sampler big-complex field arithmetic uses.
const DefaultPrec = 128

// BigDecimalPolynomial is a coefficient vector of arbitrary-precision
// rationals (big.Float), used for the high-precision inverse-resultant
// approximation 1/res and its subsequent rounding back to Z.
type BigDecimalPolynomial struct {
	Coeffs []*big.Float
	Prec   uint
}

// NewBigDecimal allocates a zero BigDecimalPolynomial of length n at the
// given precision (bits); prec<=0 uses DefaultPrec.
func NewBigDecimal(n int, prec uint) *BigDecimalPolynomial {
	if prec == 0 {
		prec = DefaultPrec
	}
	c := make([]*big.Float, n)
	for i := range c {
		c[i] = new(big.Float).SetPrec(prec)
	}
	return &BigDecimalPolynomial{Coeffs: c, Prec: prec}
}

// FromBigInt converts a BigIntPolynomial to a BigDecimalPolynomial at the
// given precision.
func FromBigInt(p *BigIntPolynomial, prec uint) *BigDecimalPolynomial {
	out := NewBigDecimal(len(p.Coeffs), prec)
	for i, c := range p.Coeffs {
		out.Coeffs[i].SetInt(c)
	}
	return out
}

// Clone deep-copies the polynomial.
func (p *BigDecimalPolynomial) Clone() *BigDecimalPolynomial {
	out := NewBigDecimal(len(p.Coeffs), p.Prec)
	for i, c := range p.Coeffs {
		out.Coeffs[i].Copy(c)
	}
	return out
}

// ScalarMul multiplies every coefficient by s.
func (p *BigDecimalPolynomial) ScalarMul(s *big.Float) *BigDecimalPolynomial {
	out := p.Clone()
	for _, c := range out.Coeffs {
		c.Mul(c, s)
	}
	return out
}

// Mult computes the circular convolution p*q mod X^N-1 directly in
// big.Float arithmetic (schoolbook; BigDecimalPolynomial is only used for
// the short inverse-resultant step, where Karatsuba's asymptotic win does
// not matter), folding the circular reduction as it accumulates rather than
// materializing a length-(2N-1) intermediate.
func (p *BigDecimalPolynomial) Mult(q *BigDecimalPolynomial) *BigDecimalPolynomial {
	n := len(p.Coeffs)
	out := NewBigDecimal(n, p.Prec)
	tmp := new(big.Float).SetPrec(p.Prec)
	for i, a := range p.Coeffs {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.Coeffs {
			k := i + j
			if k >= n {
				k -= n
			}
			tmp.Mul(a, b)
			out.Coeffs[k].Add(out.Coeffs[k], tmp)
		}
	}
	return out
}

// Round maps every coefficient to the nearest big.Int, ties away from
// zero (matching the C99-style RoundAwayFromZero convention the teacher's
// rounding.go uses).
func (p *BigDecimalPolynomial) Round() *BigIntPolynomial {
	out := New(len(p.Coeffs))
	half := new(big.Float).SetPrec(p.Prec).SetFloat64(0.5)
	for i, c := range p.Coeffs {
		var shifted big.Float
		if c.Sign() >= 0 {
			shifted.Add(c, half)
			shifted.Int(out.Coeffs[i])
		} else {
			neg := new(big.Float).SetPrec(p.Prec).Neg(c)
			neg.Add(neg, half)
			bi := new(big.Int)
			neg.Int(bi)
			out.Coeffs[i].Neg(bi)
		}
	}
	return out
}
