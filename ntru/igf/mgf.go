package igf

import (
	"crypto/sha512"
	"encoding/binary"

	"ntrugo/ntru/poly"
)

// MaskGen produces a ternary polynomial mask from a byte seed, per spec.md
// section 4.7 (MGF-TP-1, IEEE P1363.1 section 8.4.1.1):
//  1. numBytes = ceil((3N+2)/2); numCalls = max(minCallsMask, ceil(numBytes/64)).
//  2. Concatenate SHA-512(input || counter_be32) for counter = 0..numCalls-1.
//  3. Truncate to numBytes.
//  4. Decode as a trit sequence (fromBinary3) to a length-N IntegerPolynomial.
func MaskGen(input []byte, n, minCallsMask int) *poly.IntegerPolynomial {
	numBytes := (3*n + 2 + 1) / 2 // ceil((3N+2)/2)
	numCalls := (numBytes + 63) / 64
	if numCalls < minCallsMask {
		numCalls = minCallsMask
	}
	out := make([]byte, 0, numCalls*64)
	for c := 0; c < numCalls; c++ {
		var ctr [4]byte
		binary.BigEndian.PutUint32(ctr[:], uint32(c))
		h := sha512.Sum512(append(append([]byte(nil), input...), ctr[:]...))
		out = append(out, h[:]...)
	}
	out = out[:numBytes]
	return poly.FromBinary3(out, n)
}
