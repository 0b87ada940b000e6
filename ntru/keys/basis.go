package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"ntrugo/ntru/poly"
	"ntrugo/ntruencrypt"
)

// BasisType selects how a basis's f' component is packed. NTRUSign signing
// and verification are out of scope (spec.md section 1); only the basis
// storage format below is implemented.
type BasisType int

const (
	// Standard shifts f' by +q/2 before encoding and back on decode.
	Standard BasisType = iota
	// Transpose packs f' unshifted.
	Transpose
)

// Basis is one (f, f') pair of an NTRUSign private key. H is only present
// for bases with index > 0, where it supplements f/f' with the basis's
// associated public key.
type Basis struct {
	F, FPrime *poly.IntegerPolynomial
	H         *poly.IntegerPolynomial // nil for basis 0
}

// EncodeBasis packs a single basis per spec.md section 6: encode(f) ||
// encode(f') [|| h.toBinary(q) if index>0], where encode is toBinary(q).
// When basisType is Standard, f' is shifted by +q/2 before packing.
func EncodeBasis(b Basis, q int64, basisType BasisType, index int) []byte {
	fPrime := b.FPrime
	if basisType == Standard {
		fPrime = shiftConstant(fPrime, q/2, q)
	}
	out := b.F.ToBinary(q)
	out = append(out, fPrime.ToBinary(q)...)
	if index > 0 {
		if b.H == nil {
			panic("keys: EncodeBasis: basis index > 0 requires H")
		}
		out = append(out, b.H.ToBinary(q)...)
	}
	return out
}

// DecodeBasis unpacks a single basis from raw bytes; n is the ring degree
// and hPresent must match whether this basis carries an associated h
// (index > 0).
func DecodeBasis(raw []byte, n int, q int64, basisType BasisType, hPresent bool) (Basis, error) {
	width := (poly.BitsForModulus(q)*n + 7) / 8
	if len(raw) < 2*width || (hPresent && len(raw) < 3*width) {
		return Basis{}, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "short basis buffer"}
	}
	f := poly.FromBinary(raw[:width], n, q)
	fPrime := poly.FromBinary(raw[width:2*width], n, q)
	if basisType == Standard {
		fPrime = shiftConstant(fPrime, -q/2, q)
	}
	b := Basis{F: f, FPrime: fPrime}
	if hPresent {
		b.H = poly.FromBinary(raw[2*width:3*width], n, q)
	}
	return b, nil
}

// shiftConstant adds delta to every coefficient and reduces mod m (m<=0
// skips reduction), used for the +-q/2 basis shift.
func shiftConstant(p *poly.IntegerPolynomial, delta, m int64) *poly.IntegerPolynomial {
	out := p.Clone()
	for i, c := range out.Coeffs {
		v := c + delta
		if m > 0 {
			v %= m
			if v < 0 {
				v += m
			}
		}
		out.Coeffs[i] = v
	}
	return out
}

// SignPrivateKey is the full NTRUSign private key: B bases (basis 0 has no
// associated h; bases 1..B-1 each carry one).
type SignPrivateKey struct {
	Version   string   `json:"version"`
	N         int      `json:"N"`
	Q         int64    `json:"q"`
	BasisType string   `json:"basis_type"`
	Bases     []string `json:"bases"` // base64 of EncodeBasis per basis
}

// EncodeSignPrivateKey packs every basis into its persisted form.
func EncodeSignPrivateKey(n int, q int64, basisType BasisType, bases []Basis) SignPrivateKey {
	name := "standard"
	if basisType == Transpose {
		name = "transpose"
	}
	out := SignPrivateKey{Version: "ntrusign-private-v1", N: n, Q: q, BasisType: name}
	for i, b := range bases {
		out.Bases = append(out.Bases, base64.StdEncoding.EncodeToString(EncodeBasis(b, q, basisType, i)))
	}
	return out
}

// Decode unpacks every basis from its persisted form.
func (sk SignPrivateKey) Decode() ([]Basis, error) {
	basisType := Standard
	if sk.BasisType == "transpose" {
		basisType = Transpose
	}
	bases := make([]Basis, 0, len(sk.Bases))
	for i, enc := range sk.Bases {
		raw, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return nil, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "decoding basis", Err: err}
		}
		b, err := DecodeBasis(raw, sk.N, sk.Q, basisType, i > 0)
		if err != nil {
			return nil, err
		}
		bases = append(bases, b)
	}
	return bases, nil
}

// SaveSignPrivateKey writes the basis bundle to path as indented JSON.
func SaveSignPrivateKey(path string, n int, q int64, basisType BasisType, bases []Basis) error {
	enc := EncodeSignPrivateKey(n, q, basisType, bases)
	data, err := json.MarshalIndent(enc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSignPrivateKey reads a basis bundle and decodes every basis.
func LoadSignPrivateKey(path string) ([]Basis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sk SignPrivateKey
	if err := json.Unmarshal(data, &sk); err != nil {
		return nil, &ntruencrypt.Error{Kind: ntruencrypt.IOError, Reason: "parsing sign private key json", Err: err}
	}
	return sk.Decode()
}
