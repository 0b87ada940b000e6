// Package resultant computes Res(f, X^N-1) together with the cofactor
// polynomial rho such that f*rho == Res (mod X^N-1), via a per-prime
// Euclidean algorithm in GF(p)[X] combined across primes with CRT. This
// underpins NTRUSign basis construction (spec.md's "hard engineering"
// resultant component); full NTRUSign key generation is out of scope, but
// the resultant primitive itself is fully implemented and tested.
package resultant

import (
	"errors"
	"math"
	"math/big"

	"ntrugo/ntru/bigpoly"
	"ntrugo/ntru/poly"
)

// Subresultant is a (rho, res, mod) triple: res = resultant over Z (or mod
// m for a partial combination) of f with X^N-1, and rho satisfies
// f*rho == res (mod X^N-1, mod m). Rho uses arbitrary-precision
// coefficients because the running CRT modulus routinely exceeds the range
// of a machine word long before the Hadamard bound is reached.
type Subresultant struct {
	Rho *bigpoly.BigIntPolynomial
	Res *big.Int
	Mod *big.Int
}

// primeSeq yields odd primes p with gcd(p,n) == 1, in increasing order, so
// that X^N-1 stays squarefree mod p and successive primes combine via CRT
// without overlap.
type primeSeq struct {
	n   int
	cur int64
}

func newPrimeSeq(n int) *primeSeq {
	return &primeSeq{n: n, cur: 2}
}

func (s *primeSeq) next() int64 {
	for {
		s.cur++
		if s.cur%2 == 0 && s.cur != 2 {
			continue
		}
		if !isPrime(s.cur) {
			continue
		}
		if int64(s.n)%s.cur == 0 {
			continue
		}
		return s.cur
	}
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// gfPoly is a polynomial over GF(p) with dense int64 coefficients in
// [0,p), lowest degree first, trimmed of leading zeros.
type gfPoly struct {
	c []int64
	p int64
}

func (a gfPoly) degree() int {
	for i := len(a.c) - 1; i >= 0; i-- {
		if a.c[i] != 0 {
			return i
		}
	}
	return -1
}

func (a gfPoly) trim() gfPoly {
	d := a.degree()
	return gfPoly{c: append([]int64(nil), a.c[:d+1]...), p: a.p}
}

func modP(v, p int64) int64 {
	v %= p
	if v < 0 {
		v += p
	}
	return v
}

func invModP(a, p int64) (int64, bool) {
	A := big.NewInt(a)
	P := big.NewInt(p)
	inv := new(big.Int).ModInverse(A, P)
	if inv == nil {
		return 0, false
	}
	return inv.Int64(), true
}

func (a gfPoly) sub(b gfPoly) gfPoly {
	n := len(a.c)
	if len(b.c) > n {
		n = len(b.c)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a.c) {
			av = a.c[i]
		}
		if i < len(b.c) {
			bv = b.c[i]
		}
		out[i] = modP(av-bv, a.p)
	}
	return gfPoly{c: out, p: a.p}.trim()
}

func (a gfPoly) scale(s int64) gfPoly {
	out := make([]int64, len(a.c))
	for i, v := range a.c {
		out[i] = modP(v*s, a.p)
	}
	return gfPoly{c: out, p: a.p}
}

func (a gfPoly) shift(k int) gfPoly {
	out := make([]int64, len(a.c)+k)
	copy(out[k:], a.c)
	return gfPoly{c: out, p: a.p}
}

func (a gfPoly) mulScalarShift(s int64, k int) gfPoly {
	return a.scale(s).shift(k)
}

// divmod computes (q,r) such that a = q*b + r in GF(p)[X].
func (a gfPoly) divmod(b gfPoly) (q, r gfPoly, ok bool) {
	db := b.degree()
	if db < 0 {
		return gfPoly{}, gfPoly{}, false
	}
	lead, found := invModP(b.c[db], a.p)
	if !found {
		return gfPoly{}, gfPoly{}, false
	}
	r = gfPoly{c: append([]int64(nil), a.c...), p: a.p}.trim()
	qc := make([]int64, 0)
	for r.degree() >= db {
		shift := r.degree() - db
		coef := modP(r.c[r.degree()]*lead, a.p)
		if shift >= len(qc) {
			tmp := make([]int64, shift+1)
			copy(tmp, qc)
			qc = tmp
		}
		qc[shift] = modP(qc[shift]+coef, a.p)
		r = r.sub(b.mulScalarShift(coef, shift))
	}
	return gfPoly{c: qc, p: a.p}.trim(), r, true
}

// reduceModXN1 folds a GF(p) polynomial of arbitrary degree into the ring
// Z[X]/(X^N-1): wraparound always adds (no sign flip), unlike the
// power-of-two cyclotomic X^N+1 reduction.
func reduceModXN1(a gfPoly, n int) gfPoly {
	out := make([]int64, n)
	for i, v := range a.c {
		out[modIdx(i, n)] = modP(out[modIdx(i, n)]+v, a.p)
	}
	return gfPoly{c: out, p: a.p}
}

func modIdx(i, n int) int {
	return i % n
}

// computeModPrime runs the Euclidean algorithm on (f mod p, X^N-1 mod p) in
// GF(p)[X], tracking the cofactor that records what X^N-1 was multiplied
// by to reach the final nonzero constant remainder c. Res mod p is tracked
// alongside the division chain from the leading coefficients; the cofactor
// scaled by Res/c and reduced mod (X^N-1) is rho mod p. If the chain ends in
// 0 instead (f and X^N-1 share a factor mod p), ok is false.
func computeModPrime(f *poly.IntegerPolynomial, p int64) (Subresultant, bool) {
	n := f.N()
	fc := make([]int64, n)
	for i, v := range f.Coeffs {
		fc[i] = modP(v, p)
	}
	r0 := gfPoly{c: make([]int64, n+1), p: p}
	r0.c[0] = modP(-1, p)
	r0.c[n] = 1
	r1 := gfPoly{c: fc, p: p}.trim()

	// t_i tracks the cofactor with r_i = t_i*f (mod X^N-1) across the
	// division chain, mirroring the teacher's extended Euclid bookkeeping
	// (u,v track how r0,r1 combine to the final gcd). res must therefore
	// pair with t1 (the cofactor of r1), not t0.
	t0 := gfPoly{c: []int64{0}, p: p}
	t1 := gfPoly{c: []int64{1}, p: p}
	// res tracks Res(X^N-1, f) mod p via Res(a,b) =
	// (-1)^(deg a*deg b) * lc(b)^(deg a-deg r) * Res(b,r), r = a mod b.
	res := int64(1)

	for r1.degree() > 0 {
		q, r, ok := r0.divmod(r1)
		if !ok {
			return Subresultant{}, false
		}
		da, db, dr := r0.degree(), r1.degree(), r.degree()
		if da%2 == 1 && db%2 == 1 {
			res = modP(-res, p)
		}
		lcPow := new(big.Int).Exp(big.NewInt(r1.c[db]), big.NewInt(int64(da-dr)), big.NewInt(p))
		res = modP(res*lcPow.Int64(), p)
		r0, r1 = r1, r
		t2 := t0.sub(q.mul(t1))
		t0, t1 = t1, t2
	}
	if r1.degree() < 0 {
		// f and X^N-1 share a factor mod p: unusable prime for this
		// resultant; caller should pick the next prime.
		return Subresultant{}, false
	}
	// Res(a, c) = c^deg(a) for a nonzero constant c; t1*f == c, so
	// rho = t1*res/c satisfies f*rho == res.
	c := r1.c[0]
	resConst := modP(res*new(big.Int).Exp(big.NewInt(c), big.NewInt(int64(r0.degree())), big.NewInt(p)).Int64(), p)
	cInv, _ := invModP(c, p)
	rhoPoly := reduceModXN1(t1.scale(modP(resConst*cInv, p)), n)

	rho := bigpoly.New(n)
	for i, v := range rhoPoly.c {
		rho.Coeffs[i].SetInt64(v)
	}
	return Subresultant{
		Rho: rho,
		Res: big.NewInt(resConst),
		Mod: big.NewInt(p),
	}, true
}

func (a gfPoly) mul(b gfPoly) gfPoly {
	out := make([]int64, len(a.c)+len(b.c)-1)
	if len(out) < 0 {
		return gfPoly{c: []int64{0}, p: a.p}
	}
	for i, av := range a.c {
		if av == 0 {
			continue
		}
		for j, bv := range b.c {
			if bv == 0 {
				continue
			}
			out[i+j] = modP(out[i+j]+av*bv, a.p)
		}
	}
	return gfPoly{c: out, p: a.p}.trim()
}

// Combine merges two Subresultants over coprime moduli m1, m2 via extended
// Euclid: find u*m2 + v*m1 = 1, then output
// (u*m2*rho1 + v*m1*rho2, u*m2*res1 + v*m1*res2), reduced mod m1*m2.
func Combine(a, b Subresultant, n int) Subresultant {
	u, v, _ := poly.ExtGCD(b.Mod, a.Mod)
	mod := new(big.Int).Mul(a.Mod, b.Mod)

	um2 := new(big.Int).Mul(u, b.Mod)
	vm1 := new(big.Int).Mul(v, a.Mod)

	res := new(big.Int).Add(
		new(big.Int).Mul(um2, a.Res),
		new(big.Int).Mul(vm1, b.Res),
	)
	res.Mod(res, mod)

	rho := bigpoly.New(n)
	for i := 0; i < n; i++ {
		t := new(big.Int).Add(
			new(big.Int).Mul(um2, a.Rho.Coeffs[i]),
			new(big.Int).Mul(vm1, b.Rho.Coeffs[i]),
		)
		t.Mod(t, mod)
		rho.Coeffs[i] = t
	}
	return Subresultant{Rho: rho, Res: res, Mod: mod}
}

// hadamardBound returns a safe upper bound on |Res(f, X^N-1)| using the
// classical Hadamard determinant bound: ||f||_2^N * ||X^N-1||_2^(N-1)
// (N-1 >= deg(f)), doubled for margin and truncated to an integer.
func hadamardBound(f *poly.IntegerPolynomial) *big.Int {
	n := f.N()
	var sumSq float64
	for _, c := range f.Coeffs {
		sumSq += float64(c) * float64(c)
	}
	normF := math.Sqrt(sumSq)
	// ||X^N-1||_2 = sqrt(2)
	logBound := float64(n)*math.Log(math.Max(normF, 1)) + float64(n-1)*0.5*math.Log(2)
	logBound += math.Log(2) // safety margin factor of 2
	bound := new(big.Int)
	bigBound := new(big.Float).SetPrec(128)
	bigBound.SetFloat64(math.Exp(math.Min(logBound, 1e6)))
	bigBound.Int(bound)
	if bound.Sign() == 0 {
		bound.SetInt64(2)
	}
	return bound
}

// Compute returns (rho, res) such that f*rho == res (mod X^N-1), per
// spec.md section 4.5: primes are taken in increasing order with
// gcd(p,N)=1, combined via CRT until the running modulus exceeds twice the
// Hadamard bound on |res|, then centered to Z.
func Compute(f *poly.IntegerPolynomial) (rho *bigpoly.BigIntPolynomial, res *big.Int, err error) {
	n := f.N()
	bound := hadamardBound(f)
	target := new(big.Int).Mul(bound, big.NewInt(2))

	seq := newPrimeSeq(n)
	var acc *Subresultant
	for {
		p := seq.next()
		sr, ok := computeModPrime(f, p)
		if !ok {
			continue
		}
		if acc == nil {
			acc = &sr
		} else {
			combined := Combine(*acc, sr, n)
			acc = &combined
		}
		if acc.Mod.Cmp(target) > 0 {
			break
		}
	}

	half := new(big.Int).Rsh(acc.Mod, 1)
	centeredRho := bigpoly.New(n)
	for i := 0; i < n; i++ {
		v := new(big.Int).Mod(acc.Rho.Coeffs[i], acc.Mod)
		if v.Cmp(half) > 0 {
			v.Sub(v, acc.Mod)
		}
		centeredRho.Coeffs[i] = v
	}
	centeredRes := new(big.Int).Mod(acc.Res, acc.Mod)
	if centeredRes.Cmp(half) > 0 {
		centeredRes.Sub(centeredRes, acc.Mod)
	}
	if centeredRes.Sign() == 0 {
		return nil, nil, errors.New("resultant: f shares a factor with X^N-1")
	}
	return centeredRho, centeredRes, nil
}
