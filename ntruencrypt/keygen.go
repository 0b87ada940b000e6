package ntruencrypt

import (
	"ntrugo/ntru/metrics"
	"ntrugo/ntru/poly"
)

// maxKeygenAttempts bounds the retry loop below before surfacing
// KeygenFailure (spec.md section 7).
const maxKeygenAttempts = 100

// GenerateKeyPair samples f (or F, when Params.FastFp) and g per Params, and
// derives h = p*g*fq mod q, where fq = f^-1 mod q. It retries internally
// whenever a candidate is not invertible, up to maxKeygenAttempts, and
// surfaces KeygenFailure only after that cap is exceeded.
func GenerateKeyPair(p ParamSet, src poly.Source) (KeyPair, error) {
	if err := p.Validate(); err != nil {
		return KeyPair{}, wrapErr(InvalidArgument, "invalid parameter set", err)
	}

	for attempt := 0; attempt < maxKeygenAttempts; attempt++ {
		t, fp, ok := sampleF(p, src)
		if !ok {
			continue
		}
		f := reconstructF(p, t, fp)
		fq, ok := f.InvertFq(p.Q)
		if !ok {
			continue
		}

		g := sampleG(p, src)
		gDense := g.ToIntegerPolynomial()

		h := gDense.Mult(fq, 0)
		h.Mult3(p.Q)

		priv := PrivateKey{Params: p, T: t, Fp: fp}
		pub := PublicKey{Params: p, H: h}

		g.Clear()
		gDense.Clear()
		fq.Clear()

		if metrics.Enabled {
			metrics.Global.Add("ntruencrypt/keygen/h", int64(len(h.ToBinary(p.Q))))
		}

		return KeyPair{Public: pub, Private: priv}, nil
	}
	return KeyPair{}, newErr(KeygenFailure, "no invertible candidate within retry cap")
}

// sampleF draws either F (FastFp: f = 1+3F, fp = 1) or f directly
// (fp = f^-1 mod 3), returning ok=false if f (resp. F's reconstructed f) is
// not invertible mod 3 in the non-fast path.
func sampleF(p ParamSet, src poly.Source) (poly.Ternary, *poly.IntegerPolynomial, bool) {
	if p.FastFp {
		t := sampleTernary(p, p.DF1, p.DF2, p.Df, p.Df, src)
		one := poly.NewIntegerPolynomial(p.N)
		one.Coeffs[0] = 1
		return t, one, true
	}

	t := sampleTernary(p, p.DF1, p.DF2, p.Df, p.Df-1, src)
	dense := t.ToIntegerPolynomial()
	fp, ok := dense.InvertF3()
	if !ok {
		return nil, nil, false
	}
	return t, fp, true
}

func sampleG(p ParamSet, src poly.Source) poly.Ternary {
	if p.ProductForm {
		return poly.GenerateRandomProductForm(p.N, 0, 0, p.Dg, p.Dg, src)
	}
	return poly.GenerateRandomDenseTernary(p.N, p.Dg, p.Dg, src)
}

// sampleTernary draws product-form f when Params.ProductForm, else a dense
// ternary with numOnes/numNegOnes weights.
func sampleTernary(p ParamSet, df1, df2, numOnes, numNegOnes int, src poly.Source) poly.Ternary {
	if p.ProductForm {
		return poly.GenerateRandomProductForm(p.N, df1, df2, p.DF3Ones, p.DF3NegOnes, src)
	}
	return poly.GenerateRandomDenseTernary(p.N, numOnes, numNegOnes, src)
}

func reconstructF(p ParamSet, t poly.Ternary, fp *poly.IntegerPolynomial) *poly.IntegerPolynomial {
	dense := t.ToIntegerPolynomial()
	if !p.FastFp {
		return dense
	}
	one := poly.NewIntegerPolynomial(p.N)
	one.Coeffs[0] = 1
	scaled := poly.NewIntegerPolynomial(p.N)
	for i, c := range dense.Coeffs {
		scaled.Coeffs[i] = 3 * c
	}
	return one.Add(scaled, 0)
}
