// Package keys persists NTRUEncrypt key material and NTRUSign basis data
// using the bit-exact encodings from spec.md section 6, base64-wrapped for
// JSON transport.
package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"ntrugo/ntru/metrics"
	"ntrugo/ntru/poly"
	"ntrugo/ntruencrypt"
)

// PublicKey is the on-disk form of ntruencrypt.PublicKey: h.toBinary(q)
// under the parameter set's OID.
type PublicKey struct {
	Version string `json:"version"`
	OID     string `json:"oid"`
	N       int    `json:"N"`
	Q       int64  `json:"q"`
	HBin    string `json:"h_bin"`
}

// EncodePublic renders an ntruencrypt.PublicKey to its persisted form.
func EncodePublic(pub ntruencrypt.PublicKey) PublicKey {
	return PublicKey{
		Version: "ntruencrypt-public-v1",
		OID:     base64.StdEncoding.EncodeToString(pub.Params.OID[:]),
		N:       pub.Params.N,
		Q:       pub.Params.Q,
		HBin:    base64.StdEncoding.EncodeToString(pub.H.ToBinary(pub.Params.Q)),
	}
}

// Decode reconstructs h from its persisted binary form against a caller
// supplied parameter set (the wire format carries only N, q, oid as a sanity
// check, not the full parameter set).
func (pk PublicKey) Decode(params ntruencrypt.ParamSet) (ntruencrypt.PublicKey, error) {
	if pk.N != params.N || pk.Q != params.Q {
		return ntruencrypt.PublicKey{}, &ntruencrypt.Error{Kind: ntruencrypt.InvalidArgument, Reason: "public key parameter mismatch"}
	}
	raw, err := base64.StdEncoding.DecodeString(pk.HBin)
	if err != nil {
		return ntruencrypt.PublicKey{}, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "decoding h_bin", Err: err}
	}
	h := poly.FromBinary(raw, params.N, params.Q)
	return ntruencrypt.PublicKey{Params: params, H: h}, nil
}

// SavePublic writes the public key to path as indented JSON.
func SavePublic(path string, pub ntruencrypt.PublicKey) error {
	enc := EncodePublic(pub)
	data, err := json.MarshalIndent(enc, "", "  ")
	if err != nil {
		return err
	}
	if metrics.Enabled {
		metrics.Global.Add("ntru/keys/public_json", int64(len(data)))
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadPublic reads a public key file and decodes it against params.
func LoadPublic(path string, params ntruencrypt.ParamSet) (ntruencrypt.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ntruencrypt.PublicKey{}, err
	}
	var pk PublicKey
	if err := json.Unmarshal(data, &pk); err != nil {
		return ntruencrypt.PublicKey{}, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "parsing public key json", Err: err}
	}
	return pk.Decode(params)
}
