package ntruencrypt

import "ntrugo/ntru/poly"

// PublicKey is h in R/q.
type PublicKey struct {
	Params ParamSet
	H      *poly.IntegerPolynomial
}

// PrivateKey holds the ternary (or product-form) polynomial t used to
// reconstruct f, plus the precomputed fp = f^-1 mod 3 (the constant 1 when
// Params.FastFp).
//
// When Params.FastFp, T represents F and f = 1 + 3*F; otherwise T
// represents f directly.
type PrivateKey struct {
	Params ParamSet
	T      poly.Ternary
	Fp     *poly.IntegerPolynomial
}

// KeyPair bundles a public and private key generated together.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// F reconstructs the full private polynomial f: 1+3*T when FastFp, else T
// directly.
func (priv PrivateKey) F() *poly.IntegerPolynomial {
	t := priv.T.ToIntegerPolynomial()
	if !priv.Params.FastFp {
		return t
	}
	one := poly.NewIntegerPolynomial(priv.Params.N)
	one.Coeffs[0] = 1
	scaled := poly.NewIntegerPolynomial(priv.Params.N)
	for i, c := range t.Coeffs {
		scaled.Coeffs[i] = 3 * c
	}
	return one.Add(scaled, 0)
}

// Zeroize overwrites the private polynomial's backing storage. fp is left
// intact: it is not a keygen secret intermediate, it is part of the
// reconstructed private key spec.md requires decrypt to retain.
func (priv *PrivateKey) Zeroize() {
	priv.T.Clear()
}
