// Package fingerprint derives deterministic 3-byte OIDs for parameter sets,
// in the teacher's SHAKE-XOF idiom (PIOP/fs_helpers.go's Shake256XOF).
package fingerprint

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// OID squeezes a 3-byte identifier out of SHAKE128 keyed by label and the
// parameter fields supplied via fields, so that two parameter sets built
// from the same field values always derive the same oid.
func OID(label string, fields ...int64) [3]byte {
	h := sha3.NewShake128()
	_, _ = h.Write([]byte(label))
	buf := make([]byte, 8)
	for _, f := range fields {
		binary.BigEndian.PutUint64(buf, uint64(f))
		_, _ = h.Write(buf)
	}
	var out [3]byte
	_, _ = h.Read(out[:])
	return out
}
