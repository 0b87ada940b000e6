// Package paramio loads ntruencrypt.ParamSet from JSON, tolerating both
// capitalized and lowercase field names and Q given as a hex string, a
// decimal string, or a plain number, in the spirit of the original
// parameter-loading helper this package replaces.
package paramio

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"ntrugo/ntru/fingerprint"
	"ntrugo/ntruencrypt"
)

// raw mirrors ParamSet but accepts loose field types for Q and the OID.
type raw struct {
	N           *int    `json:"N"`
	NLower      *int    `json:"n"`
	Q           any     `json:"Q"`
	QLower      any     `json:"q"`
	Df          int     `json:"df"`
	Dr          int     `json:"dr"`
	Dg          int     `json:"dg"`
	ProductForm bool    `json:"productForm"`
	DF1         int     `json:"df1"`
	DF2         int     `json:"df2"`
	DF3Ones     int     `json:"df3Ones"`
	DF3NegOnes  int     `json:"df3NegOnes"`
	Db          int     `json:"db"`
	Dm0         int     `json:"dm0"`
	C           int     `json:"c"`
	MinCallsR   int     `json:"minCallsR"`
	MinCallsMask int    `json:"minCallsMask"`
	OID         string  `json:"oid"` // hex-encoded, e.g. "000203"
	Sparse      bool    `json:"sparse"`
	FastFp      bool    `json:"fastFp"`
}

// Load reads path and returns a validated ParamSet.
func Load(path string) (ntruencrypt.ParamSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ntruencrypt.ParamSet{}, err
	}
	return Parse(data)
}

// Parse decodes a ParamSet from JSON bytes already in memory.
func Parse(data []byte) (ntruencrypt.ParamSet, error) {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return ntruencrypt.ParamSet{}, fmt.Errorf("paramio: %w", err)
	}

	var p ntruencrypt.ParamSet
	switch {
	case r.N != nil:
		p.N = *r.N
	case r.NLower != nil:
		p.N = *r.NLower
	default:
		return p, fmt.Errorf("paramio: missing N")
	}

	qVal := r.Q
	if qVal == nil {
		qVal = r.QLower
	}
	q, err := parseQ(qVal)
	if err != nil {
		return p, err
	}
	p.Q = q
	p.P = 3

	p.Df, p.Dr, p.Dg = r.Df, r.Dr, r.Dg
	p.ProductForm = r.ProductForm
	p.DF1, p.DF2, p.DF3Ones, p.DF3NegOnes = r.DF1, r.DF2, r.DF3Ones, r.DF3NegOnes
	p.Db, p.Dm0, p.C = r.Db, r.Dm0, r.C
	p.MinCallsR, p.MinCallsMask = r.MinCallsR, r.MinCallsMask
	p.Sparse = r.Sparse
	p.FastFp = r.FastFp

	if r.OID != "" {
		oidBytes, err := hex.DecodeString(r.OID)
		if err != nil || len(oidBytes) != 3 {
			return p, fmt.Errorf("paramio: oid must be 3 hex bytes, got %q", r.OID)
		}
		copy(p.OID[:], oidBytes)
	} else {
		// No oid supplied: derive one deterministically so custom
		// parameter sets still round-trip through sData (spec.md
		// section 4.8) without colliding with the standard catalog.
		p.OID = fingerprint.OID("ntrugo-custom-paramset", int64(p.N), p.Q, int64(p.Df), int64(p.Dg))
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func parseQ(v any) (int64, error) {
	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("paramio: missing Q")
	case float64:
		return int64(t), nil
	case string:
		s := t
		if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
			s = s[2:]
			var q int64
			if _, err := fmt.Sscanf(s, "%x", &q); err != nil {
				return 0, fmt.Errorf("paramio: invalid hex Q %q: %w", t, err)
			}
			return q, nil
		}
		var q int64
		if _, err := fmt.Sscanf(s, "%d", &q); err != nil {
			return 0, fmt.Errorf("paramio: invalid Q %q: %w", t, err)
		}
		return q, nil
	default:
		return 0, fmt.Errorf("paramio: Q has unsupported type %T", v)
	}
}
