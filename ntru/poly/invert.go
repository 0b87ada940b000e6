package poly

import (
	"os"

	"ntrugo/ntru/internal/dbg"
)

// InvertF2 computes the inverse of p modulo 2 via the Almost Inverse
// Algorithm over GF(2)[X]/(X^N-1), returning (inverse, true) on success, or
// (nil, false) if p is not invertible mod 2 (tracked via an iteration
// counter k that would otherwise exceed 2N without reaching degree 0).
func (p *IntegerPolynomial) InvertF2() (*IntegerPolynomial, bool) {
	n := p.N()
	dbg.Printf(os.Stderr, "[poly] InvertF2 begin N=%d\n", n)

	f := make([]byte, n)
	for i, v := range p.Coeffs {
		f[i] = byte(v & 1)
	}
	g := make([]byte, n+1)
	g[0] = 1
	g[n] = 1

	k := 0
	degF := degreeGF2(f)
	degG := n
	bPoly := make([]byte, 1)
	bPoly[0] = 1
	cPoly := make([]byte, 1)

	for {
		if degF < 0 {
			return nil, false
		}
		if degF == 0 {
			// f is the unit 1: bPoly satisfies bPoly*a = f (mod X^N-1)
			// directly, so it is the inverse once folded into N terms.
			inv := foldGF2(bPoly, n)
			out := NewIntegerPolynomial(n)
			for i, v := range inv {
				out.Coeffs[i] = int64(v)
			}
			dbg.Printf(os.Stderr, "[poly] InvertF2 done k=%d\n", k)
			return out, true
		}
		if degF < degG {
			f, g = g, f
			degF, degG = degG, degF
			bPoly, cPoly = cPoly, bPoly
		}
		f = xorGF2(f, shiftLeftGF2(g, degF-degG))
		bPoly = xorGF2(bPoly, shiftLeftGF2(cPoly, degF-degG))
		degF = degreeGF2(f)
		k++
		if k > 2*n {
			return nil, false
		}
	}
}

// InvertFq computes p^{-1} mod q for q a power of two, via Hensel lifting
// from the mod-2 inverse: b = InvertF2(); then n <- n*n, b <- b*(2-a*b) mod
// n, repeated until n >= q.
func (p *IntegerPolynomial) InvertFq(q int64) (*IntegerPolynomial, bool) {
	dbg.Printf(os.Stderr, "[poly] InvertFq begin q=%d\n", q)
	if q <= 0 || (q&(q-1)) != 0 {
		return nil, false
	}
	b, ok := p.InvertF2()
	if !ok {
		return nil, false
	}
	modulus := int64(2)
	for modulus < q {
		modulus *= modulus
		if modulus > q {
			modulus = q
		}
		// b <- b*(2 - a*b) mod modulus
		ab := p.Mult(b, modulus)
		two := NewIntegerPolynomial(p.N())
		two.Coeffs[0] = 2
		twoMinusAB := two.Sub(ab, modulus)
		b = b.Mult(twoMinusAB, modulus)
	}
	dbg.Printf(os.Stderr, "[poly] InvertFq done\n")
	return b, true
}

// InvertF3 computes the inverse of p modulo 3 via the Almost Inverse
// Algorithm over GF(3)[X]/(X^N-1).
func (p *IntegerPolynomial) InvertF3() (*IntegerPolynomial, bool) {
	n := p.N()
	dbg.Printf(os.Stderr, "[poly] InvertF3 begin N=%d\n", n)

	f := make([]int8, n)
	for i, v := range p.Coeffs {
		r := int8(((v % 3) + 3) % 3)
		f[i] = r
	}
	g := make([]int8, n+1)
	g[0] = 2 // -1 mod 3
	g[n] = 1

	degF := degreeGF3(f)
	degG := n
	b := make([]int8, 1)
	b[0] = 1
	c := make([]int8, 1)
	k := 0

	for {
		if degF < 0 {
			return nil, false
		}
		if degF == 0 {
			// f is the unit f[0]: b satisfies b*a = f (mod X^N-1)
			// directly, so scaling by f[0]^-1 and folding mod X^N-1
			// (no rotation) gives the inverse.
			inv3 := modInv3(f[0])
			scaled := scaleGF3(b, inv3)
			folded := foldGF3(scaled, n)
			out := NewIntegerPolynomial(n)
			for i, v := range folded {
				out.Coeffs[i] = int64(v)
			}
			dbg.Printf(os.Stderr, "[poly] InvertF3 done k=%d\n", k)
			return out, true
		}
		if degF < degG {
			f, g = g, f
			degF, degG = degG, degF
			b, c = c, b
		}
		u := mulInv3(f[degF], g[degG])
		f = subScaledGF3(f, g, u, degF-degG)
		b = subScaledGF3(b, c, u, degF-degG)
		degF = degreeGF3(f)
		k++
		if k > 2*n {
			return nil, false
		}
	}
}

// --- GF(2) helpers ---

func degreeGF2(a []byte) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i]&1 != 0 {
			return i
		}
	}
	return -1
}

func xorGF2(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := range out {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = (av ^ bv) & 1
	}
	return out
}

func shiftLeftGF2(a []byte, k int) []byte {
	out := make([]byte, len(a)+k)
	copy(out[k:], a)
	return out
}

// foldGF2 reduces a, whose length may exceed n, mod X^N-1 by XORing each
// term's coefficient into its index mod n.
func foldGF2(a []byte, n int) []byte {
	out := make([]byte, n)
	for i, v := range a {
		if v == 0 {
			continue
		}
		out[i%n] ^= v
	}
	return out
}

// --- GF(3) helpers ---

func degreeGF3(a []int8) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i]%3 != 0 {
			return i
		}
	}
	return -1
}

func modInv3(a int8) int8 {
	switch ((a % 3) + 3) % 3 {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 0
	}
}

func mulInv3(num, den int8) int8 {
	inv := modInv3(den)
	return int8((int(num) * int(inv)) % 3)
}

func scaleGF3(a []int8, s int8) []int8 {
	out := make([]int8, len(a))
	for i, v := range a {
		out[i] = int8(((int(v) * int(s)) % 3 + 3) % 3)
	}
	return out
}

func subScaledGF3(a, b []int8, s int8, shift int) []int8 {
	n := len(a)
	if len(b)+shift > n {
		n = len(b) + shift
	}
	out := make([]int8, n)
	copy(out, a)
	for i, v := range b {
		idx := i + shift
		term := int8(((int(v) * int(s)) % 3 + 3) % 3)
		out[idx] = int8((((int(out[idx]) - int(term)) % 3) + 3) % 3)
	}
	return out
}

// foldGF3 reduces a, whose length may exceed n, mod X^N-1 by adding each
// term's coefficient into its index mod n.
func foldGF3(a []int8, n int) []int8 {
	out := make([]int8, n)
	for i, v := range a {
		if v == 0 {
			continue
		}
		idx := i % n
		out[idx] = int8(((int(out[idx]) + int(v)) % 3 + 3) % 3)
	}
	return out
}
