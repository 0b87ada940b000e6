package poly

import "testing"

func ternaryFixture(n int) *IntegerPolynomial {
	p := NewIntegerPolynomial(n)
	pattern := []int64{0, 1, -1}
	for i := range p.Coeffs {
		p.Coeffs[i] = pattern[i%len(pattern)]
	}
	return p
}

func TestToBinary3TightRoundTrip(t *testing.T) {
	for _, n := range []int{1, 4, 5, 6, 23, 100} {
		p := ternaryFixture(n)
		data := p.ToBinary3Tight()
		decoded := FromBinary3Tight(data, n)
		if !p.Equal(decoded) {
			t.Fatalf("n=%d: tight3 round trip mismatch: got %v, want %v", n, decoded, p)
		}
	}
}

func TestToBinary3ArithRoundTrip(t *testing.T) {
	for _, n := range []int{1, 4, 8, 23, 100} {
		p := ternaryFixture(n)
		data := p.ToBinary3Arith()
		decoded, err := FromBinary3Arith(data, n, true)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if !p.Equal(decoded) {
			t.Fatalf("n=%d: arith3 round trip mismatch: got %v, want %v", n, decoded, p)
		}
	}
}

func TestFromBinary3ArithRejectsReservedPair(t *testing.T) {
	data := []byte{0xFF} // four 11-pairs
	if _, err := FromBinary3Arith(data, 4, true); err != ErrReservedTritPair {
		t.Fatalf("strict decode of reserved pair = %v, want ErrReservedTritPair", err)
	}
	decoded, err := FromBinary3Arith(data, 4, false)
	if err != nil {
		t.Fatalf("non-strict decode returned error: %v", err)
	}
	for i, v := range decoded.Coeffs {
		if v != 0 {
			t.Fatalf("non-strict decode of reserved pair at %d = %d, want 0", i, v)
		}
	}
}

func TestFromBinary3NonStrict(t *testing.T) {
	p := ternaryFixture(10)
	data := p.ToBinary3Arith()
	decoded := FromBinary3(data, 10)
	if !p.Equal(decoded) {
		t.Fatalf("FromBinary3 mismatch: got %v, want %v", decoded, p)
	}
}
