package poly

import (
	"fmt"
	"os"

	"ntrugo/ntru/internal/dbg"
)

// IntegerPolynomial is a dense coefficient vector of fixed length N over Z,
// representing an element of R = Z[X]/(X^N-1). Index arithmetic on the
// coefficient slice is always taken modulo N.
type IntegerPolynomial struct {
	Coeffs []int64
}

// NewIntegerPolynomial allocates a zero polynomial of degree < N.
func NewIntegerPolynomial(n int) *IntegerPolynomial {
	return &IntegerPolynomial{Coeffs: make([]int64, n)}
}

// FromCoeffs copies c into a fresh IntegerPolynomial.
func FromCoeffs(c []int64) *IntegerPolynomial {
	out := make([]int64, len(c))
	copy(out, c)
	return &IntegerPolynomial{Coeffs: out}
}

// N returns the ring degree.
func (p *IntegerPolynomial) N() int { return len(p.Coeffs) }

// Clone returns a deep copy.
func (p *IntegerPolynomial) Clone() *IntegerPolynomial {
	return FromCoeffs(p.Coeffs)
}

// Clear zeroizes the coefficient vector in place.
func (p *IntegerPolynomial) Clear() {
	for i := range p.Coeffs {
		p.Coeffs[i] = 0
	}
}

// Equal reports coefficient-wise equality.
func (p *IntegerPolynomial) Equal(q *IntegerPolynomial) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i] != q.Coeffs[i] {
			return false
		}
	}
	return true
}

// Mult returns c = p*b in R. If modulus > 0, coefficients are reduced into
// [0,modulus). Schoolbook O(N^2): for each output index k,
// c[k] = sum_{i+j == k (mod N)} p[i]*b[j].
func (p *IntegerPolynomial) Mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	n := p.N()
	dbg.Printf(os.Stderr, "[poly] Mult begin N=%d modulus=%d\n", n, modulus)
	out := NewIntegerPolynomial(n)
	for i := 0; i < n; i++ {
		ai := p.Coeffs[i]
		if ai == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			k := i + j
			if k >= n {
				k -= n
			}
			out.Coeffs[k] += ai * b.Coeffs[j]
		}
	}
	if modulus > 0 {
		out.reduceInPlace(modulus)
	}
	return out
}

// Add returns p+b, reduced mod modulus if modulus > 0.
func (p *IntegerPolynomial) Add(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	out := NewIntegerPolynomial(p.N())
	for i := range p.Coeffs {
		out.Coeffs[i] = p.Coeffs[i] + b.Coeffs[i]
	}
	if modulus > 0 {
		out.reduceInPlace(modulus)
	}
	return out
}

// Sub returns p-b, reduced mod modulus if modulus > 0.
func (p *IntegerPolynomial) Sub(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	out := NewIntegerPolynomial(p.N())
	for i := range p.Coeffs {
		out.Coeffs[i] = p.Coeffs[i] - b.Coeffs[i]
	}
	if modulus > 0 {
		out.reduceInPlace(modulus)
	}
	return out
}

// Mult3 multiplies in place by 3 then reduces mod q. Used when computing
// h = 3*g*fq mod q.
func (p *IntegerPolynomial) Mult3(q int64) {
	for i := range p.Coeffs {
		p.Coeffs[i] *= 3
	}
	p.reduceInPlace(q)
}

func (p *IntegerPolynomial) reduceInPlace(m int64) {
	for i, v := range p.Coeffs {
		v %= m
		if v < 0 {
			v += m
		}
		p.Coeffs[i] = v
	}
}

// Mod3 reduces every coefficient into the balanced representatives {-1,0,1}
// (equivalent to ModCenter(3)).
func (p *IntegerPolynomial) Mod3() *IntegerPolynomial {
	return p.ModCenter(3)
}

// ModCenter returns coefficients centered into (-q/2, q/2].
func (p *IntegerPolynomial) ModCenter(q int64) *IntegerPolynomial {
	out := p.Clone()
	half := q / 2
	for i, v := range out.Coeffs {
		v %= q
		if v < 0 {
			v += q
		}
		if v > half {
			v -= q
		}
		out.Coeffs[i] = v
	}
	return out
}

// Center0 is an alias for ModCenter kept for readability at call sites that
// mirror the spec's naming.
func (p *IntegerPolynomial) Center0(q int64) *IntegerPolynomial {
	return p.ModCenter(q)
}

// ModPositive returns representatives in [0,q).
func (p *IntegerPolynomial) ModPositive(q int64) *IntegerPolynomial {
	out := p.Clone()
	out.reduceInPlace(q)
	return out
}

// EnsurePositive converts any negative representative in place to [0,q).
func (p *IntegerPolynomial) EnsurePositive(q int64) {
	p.reduceInPlace(q)
}

// Count returns the number of coefficients equal to v.
func (p *IntegerPolynomial) Count(v int64) int {
	n := 0
	for _, c := range p.Coeffs {
		if c == v {
			n++
		}
	}
	return n
}

// String renders the coefficient vector for debugging.
func (p *IntegerPolynomial) String() string {
	return fmt.Sprintf("%v", p.Coeffs)
}
