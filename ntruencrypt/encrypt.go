package ntruencrypt

import (
	"ntrugo/ntru/igf"
	"ntrugo/ntru/metrics"
	"ntrugo/ntru/poly"
)

// maxEncryptAttempts bounds the dm0-balance retry loop before surfacing
// EncryptFailure (spec.md section 7).
const maxEncryptAttempts = 100

// Encrypt runs the SVES procedure from spec.md section 4.8 and returns the
// fixed-width ciphertext e.toBinary(q).
func Encrypt(pub PublicKey, m []byte, src poly.Source) ([]byte, error) {
	p := pub.Params
	if len(m) > p.MaxMsgLenBytes() {
		return nil, newErr(InvalidArgument, "message exceeds maxMsgLenBytes")
	}

	hTrunc := hTruncated(pub)

	for attempt := 0; attempt < maxEncryptAttempts; attempt++ {
		b := make([]byte, p.Db/8)
		if err := src.FillRandom(b); err != nil {
			return nil, wrapErr(CryptoUnavailable, "random source failed", err)
		}

		msg := composeM(p, b, m)
		mTrin := poly.FromBinary3(msg, p.N)

		sData := composeSData(p, m, b, hTrunc)
		r := generateBlindingPoly(p, sData)

		R := r.Mult(pub.H, p.Q)
		oR4 := R.ModPositive(4).ToBinary(4)
		mask := igf.MaskGen(oR4, p.N, p.MinCallsMask)

		mTrin = mTrin.Add(mask, 0).Mod3()

		if mTrin.Count(-1) < p.Dm0 || mTrin.Count(0) < p.Dm0 || mTrin.Count(1) < p.Dm0 {
			continue
		}

		e := R.Add(mTrin, p.Q)
		e.EnsurePositive(p.Q)
		ct := e.ToBinary(p.Q)
		if metrics.Enabled {
			metrics.Global.Add("ntruencrypt/encrypt/ciphertext", int64(len(ct)))
		}
		return ct, nil
	}
	return nil, newErr(EncryptFailure, "dm0 balance not met within retry cap")
}

func hTruncated(pub PublicKey) []byte {
	full := pub.H.ToBinary(pub.Params.Q)
	n := pub.Params.PkLen() / 8
	if n > len(full) {
		n = len(full)
	}
	return full[:n]
}

// composeM builds b || octL(|m|) || m || p0, zero-padded to
// Params.BufferLenBits()/8 bytes.
func composeM(p ParamSet, b, m []byte) []byte {
	total := p.BufferLenBits() / 8
	out := make([]byte, 0, total)
	out = append(out, b...)
	out = append(out, byte(len(m)))
	out = append(out, m...)
	for len(out) < total {
		out = append(out, 0)
	}
	return out
}

func composeSData(p ParamSet, m, b, hTrunc []byte) []byte {
	out := make([]byte, 0, 3+len(m)+len(b)+len(hTrunc))
	out = append(out, p.OID[:]...)
	out = append(out, m...)
	out = append(out, b...)
	out = append(out, hTrunc...)
	return out
}
