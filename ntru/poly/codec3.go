package poly

import "errors"

// ErrReservedTritPair is returned by decoders when a strict arith3 decode
// encounters the reserved bit pair 11.
var ErrReservedTritPair = errors.New("poly: reserved trit bit-pair 11 encountered")

// tritToCode maps {-1,0,1} to {2,0,1} (the encoding used by both tight3 and
// arith3 packing).
func tritToCode(v int64) byte {
	switch v {
	case 0:
		return 0
	case 1:
		return 1
	case -1:
		return 2
	default:
		panic("poly: coefficient out of ternary range")
	}
}

func codeToTrit(c byte) int64 {
	switch c {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return -1
	default:
		panic("poly: invalid trit code")
	}
}

// ToBinary3Tight packs 5 trits per byte as d = t0 + 3*t1 + 9*t2 + 27*t3 +
// 81*t4. A final partial group of fewer than 5 trits packs identically with
// the remaining high trits treated as 0.
func (p *IntegerPolynomial) ToBinary3Tight() []byte {
	n := p.N()
	out := make([]byte, 0, (n+4)/5)
	for i := 0; i < n; i += 5 {
		var d int
		mul := 1
		for j := 0; j < 5; j++ {
			var t int
			if i+j < n {
				t = int(tritToCode(p.Coeffs[i+j]))
			}
			d += t * mul
			mul *= 3
		}
		out = append(out, byte(d))
	}
	return out
}

// FromBinary3Tight unpacks n trits, 5 per byte, in the ToBinary3Tight layout.
func FromBinary3Tight(data []byte, n int) *IntegerPolynomial {
	out := NewIntegerPolynomial(n)
	idx := 0
	for _, b := range data {
		d := int(b)
		for j := 0; j < 5 && idx < n; j++ {
			out.Coeffs[idx] = codeToTrit(byte(d % 3))
			d /= 3
			idx++
		}
		if idx >= n {
			break
		}
	}
	return out
}

// ToBinary3Arith packs 2 bits per trit, MSB-first within each byte:
// 00->0, 01->1, 10->-1.
func (p *IntegerPolynomial) ToBinary3Arith() []byte {
	var bw bitWriter
	for _, c := range p.Coeffs {
		bw.writeBits(uint64(tritToCode(c)), 2)
	}
	return bw.bytes()
}

// FromBinary3Arith unpacks n trits at 2 bits each. If strict is true, the
// reserved code 11 is rejected with ErrReservedTritPair rather than silently
// mapped to 0.
func FromBinary3Arith(data []byte, n int, strict bool) (*IntegerPolynomial, error) {
	br := newBitReader(data)
	out := NewIntegerPolynomial(n)
	for i := 0; i < n; i++ {
		code := byte(br.readBits(2))
		if code == 3 {
			if strict {
				return nil, ErrReservedTritPair
			}
			code = 0
		}
		out.Coeffs[i] = codeToTrit(code)
	}
	return out, nil
}

// FromBinary3 maps each bit pair of data to a trit (00->0,01->1,10->-1,
// 11->treated as 0, non-strict), filling n coefficients in order. This is
// the non-strict variant used by MGF-TP-1 and SVES message encoding, where
// the input is hash output rather than an attacker-controlled wire value.
func FromBinary3(data []byte, n int) *IntegerPolynomial {
	out, _ := FromBinary3Arith(data, n, false)
	return out
}
