package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"ntrugo/ntru/poly"
	"ntrugo/ntruencrypt"
)

// PrivateKey is the on-disk form of ntruencrypt.PrivateKey: the ternary
// (or product-form) seed polynomial t encoded per spec.md section 6.
// fp is never persisted; it is recomputed on load since it is a pure
// function of t and Params.FastFp.
type PrivateKey struct {
	Version string `json:"version"`
	OID     string `json:"oid"`
	N       int    `json:"N"`
	Q       int64  `json:"q"`
	TBin    string `json:"t_bin"`
}

// EncodePrivate renders an ntruencrypt.PrivateKey to its persisted form.
func EncodePrivate(priv ntruencrypt.PrivateKey) (PrivateKey, error) {
	var raw []byte
	if priv.Params.ProductForm {
		pf, ok := priv.T.(*poly.ProductFormPolynomial)
		if !ok {
			return PrivateKey{}, &ntruencrypt.Error{Kind: ntruencrypt.InvalidArgument, Reason: "product-form parameter set with non product-form key"}
		}
		raw = pf.ToBinary()
	} else {
		raw = priv.T.ToIntegerPolynomial().ToBinary3Tight()
	}
	return PrivateKey{
		Version: "ntruencrypt-private-v1",
		OID:     base64.StdEncoding.EncodeToString(priv.Params.OID[:]),
		N:       priv.Params.N,
		Q:       priv.Params.Q,
		TBin:    base64.StdEncoding.EncodeToString(raw),
	}, nil
}

// Decode reconstructs t and fp against a caller supplied parameter set and
// recomputes fp = f^-1 mod 3 (the constant 1 when FastFp).
func (pk PrivateKey) Decode(params ntruencrypt.ParamSet) (ntruencrypt.PrivateKey, error) {
	if pk.N != params.N || pk.Q != params.Q {
		return ntruencrypt.PrivateKey{}, &ntruencrypt.Error{Kind: ntruencrypt.InvalidArgument, Reason: "private key parameter mismatch"}
	}
	raw, err := base64.StdEncoding.DecodeString(pk.TBin)
	if err != nil {
		return ntruencrypt.PrivateKey{}, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "decoding t_bin", Err: err}
	}

	var t poly.Ternary
	if params.ProductForm {
		t = poly.ProductFormFromBinary(raw, poly.ProductFormWeights{
			N:          params.N,
			DF1:        params.DF1,
			DF2:        params.DF2,
			DF3Ones:    params.DF3Ones,
			DF3NegOnes: params.DF3NegOnes,
		})
	} else {
		dense := poly.FromBinary3Tight(raw, params.N)
		t = poly.NewDenseTernaryPolynomial(dense)
	}

	f := reconstructF(params, t)
	var fp *poly.IntegerPolynomial
	if params.FastFp {
		fp = poly.NewIntegerPolynomial(params.N)
		fp.Coeffs[0] = 1
	} else {
		inv, ok := f.InvertF3()
		if !ok {
			return ntruencrypt.PrivateKey{}, &ntruencrypt.Error{Kind: ntruencrypt.InvalidArgument, Reason: "private key f is not invertible mod 3"}
		}
		fp = inv
	}
	return ntruencrypt.PrivateKey{Params: params, T: t, Fp: fp}, nil
}

func reconstructF(params ntruencrypt.ParamSet, t poly.Ternary) *poly.IntegerPolynomial {
	dense := t.ToIntegerPolynomial()
	if !params.FastFp {
		return dense
	}
	one := poly.NewIntegerPolynomial(params.N)
	one.Coeffs[0] = 1
	scaled := poly.NewIntegerPolynomial(params.N)
	for i, c := range dense.Coeffs {
		scaled.Coeffs[i] = 3 * c
	}
	return one.Add(scaled, 0)
}

// SavePrivate writes the private key to path as indented JSON.
func SavePrivate(path string, priv ntruencrypt.PrivateKey) error {
	enc, err := EncodePrivate(priv)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(enc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadPrivate reads a private key file and decodes it against params.
func LoadPrivate(path string, params ntruencrypt.ParamSet) (ntruencrypt.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ntruencrypt.PrivateKey{}, err
	}
	var pk PrivateKey
	if err := json.Unmarshal(data, &pk); err != nil {
		return ntruencrypt.PrivateKey{}, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "parsing private key json", Err: err}
	}
	return pk.Decode(params)
}
