package ntruencrypt

import (
	"ntrugo/ntru/igf"
	"ntrugo/ntru/metrics"
	"ntrugo/ntru/poly"
)

// Decrypt runs the SVES decryption procedure from spec.md section 4.8,
// rejecting with InvalidCiphertext on any dm0-balance, padding, or
// blinding-consistency failure, per the corrected check from spec.md
// section 9 (verifying r'*h + ci == e rather than the original r'==r'*h
// comparison).
func Decrypt(kp KeyPair, data []byte) ([]byte, error) {
	p := kp.Private.Params
	e := poly.FromBinary(data, p.N, p.Q)

	ci := decryptCore(p, kp.Private, e)
	if ci.Count(-1) < p.Dm0 || ci.Count(0) < p.Dm0 || ci.Count(1) < p.Dm0 {
		return nil, newErr(InvalidCiphertext, "dm0 balance violated")
	}

	diff := e.Sub(ci, p.Q).ModPositive(4)
	mask := igf.MaskGen(diff.ToBinary(4), p.N, p.MinCallsMask)

	cMTrin := ci.Sub(mask, 0).Mod3()
	cM := cMTrin.ToBinary3Arith()

	b, m, err := parseCM(p, cM)
	if err != nil {
		return nil, err
	}

	hTrunc := hTruncated(kp.Public)
	sData := composeSData(p, m, b, hTrunc)
	r := generateBlindingPoly(p, sData)

	candidate := r.Mult(kp.Public.H, p.Q).Add(ci, p.Q)
	if !candidate.Equal(e) {
		return nil, newErr(InvalidCiphertext, "blinding polynomial consistency check failed")
	}

	if metrics.Enabled {
		metrics.Global.Add("ntruencrypt/decrypt/plaintext", int64(len(m)))
	}
	return m, nil
}

// decryptCore computes a = f*e reduced to a ternary representative, then
// (non-fastFp) multiplies by fp mod 3; see spec.md section 4.8 step 2.
func decryptCore(p ParamSet, priv PrivateKey, e *poly.IntegerPolynomial) *poly.IntegerPolynomial {
	var a *poly.IntegerPolynomial
	if p.FastFp {
		term := priv.T.Mult(e, 0)
		term.Mult3(p.Q)
		a = term.Add(e, p.Q)
	} else {
		a = priv.T.Mult(e, p.Q)
	}
	a = a.Center0(p.Q)
	a = a.Mod3()
	if p.FastFp {
		return a
	}
	ci := a.Mult(priv.Fp, 3)
	return ci.Center0(3)
}

// parseCM splits cM into b (Db/8 bytes), m (length-prefixed), and validates
// the trailing padding is all zero.
func parseCM(p ParamSet, cM []byte) (b, m []byte, err error) {
	bLen := p.Db / 8
	if len(cM) < bLen+1 {
		return nil, nil, newErr(InvalidCiphertext, "decoded buffer too short")
	}
	b = append([]byte(nil), cM[:bLen]...)
	mLen := int(cM[bLen])
	if mLen > p.MaxMsgLenBytes() {
		return nil, nil, newErr(InvalidCiphertext, "decoded message length exceeds maxMsgLenBytes")
	}
	if len(cM) < bLen+1+mLen {
		return nil, nil, newErr(InvalidCiphertext, "decoded buffer too short for message")
	}
	m = append([]byte(nil), cM[bLen+1:bLen+1+mLen]...)
	for _, v := range cM[bLen+1+mLen:] {
		if v != 0 {
			return nil, nil, newErr(InvalidCiphertext, "non-zero padding after message")
		}
	}
	return b, m, nil
}
