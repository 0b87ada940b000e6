package poly

import "math/big"

// ExtGCD returns (u,v,g) such that a*u + b*v = g = gcd(a,b), used to find
// Bezout coefficients for modular inversion and CRT combination in the
// resultant pipeline.
func ExtGCD(a, b *big.Int) (u, v, g *big.Int) {
	u = new(big.Int)
	v = new(big.Int)
	g = new(big.Int).GCD(u, v, new(big.Int).Abs(a), new(big.Int).Abs(b))
	if a.Sign() < 0 {
		u.Neg(u)
	}
	if b.Sign() < 0 {
		v.Neg(v)
	}
	return u, v, g
}
