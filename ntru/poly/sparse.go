package poly

import "sort"

// SparseTernaryPolynomial represents a ternary polynomial as two disjoint
// sorted index lists: positions holding +1 and positions holding -1. All
// other coefficients are implicitly 0.
type SparseTernaryPolynomial struct {
	N       int
	Ones    []int
	NegOnes []int
}

// NewSparseTernaryPolynomial builds a SparseTernaryPolynomial from explicit
// index lists, sorting both lists. Disjointness of the two lists is not
// checked.
func NewSparseTernaryPolynomial(n int, ones, negOnes []int) *SparseTernaryPolynomial {
	o := append([]int(nil), ones...)
	no := append([]int(nil), negOnes...)
	sort.Ints(o)
	sort.Ints(no)
	return &SparseTernaryPolynomial{N: n, Ones: o, NegOnes: no}
}

// GenerateRandomSparseTernary samples numOnes distinct +1 positions and
// numNegOnes distinct -1 positions from {0..N-1} without replacement, using
// src as a cryptographic RNG (via rejection-sampled uniform indices).
func GenerateRandomSparseTernary(n, numOnes, numNegOnes int, src Source) *SparseTernaryPolynomial {
	taken := make(map[int]bool, numOnes+numNegOnes)
	draw := func(count int) []int {
		out := make([]int, 0, count)
		for len(out) < count {
			idx, err := uniformIndex(n, src)
			if err != nil {
				panic(err) // Source failures are fatal; callers inject a non-failing Source.
			}
			if taken[idx] {
				continue
			}
			taken[idx] = true
			out = append(out, idx)
		}
		sort.Ints(out)
		return out
	}
	ones := draw(numOnes)
	negOnes := draw(numNegOnes)
	return &SparseTernaryPolynomial{N: n, Ones: ones, NegOnes: negOnes}
}

// Mult computes c[k] = sum_{i in Ones} b[(k-i) mod N] - sum_{i in NegOnes}
// b[(k-i) mod N], total work O(N*(|Ones|+|NegOnes|)).
func (s *SparseTernaryPolynomial) Mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	n := s.N
	out := NewIntegerPolynomial(n)
	for _, i := range s.Ones {
		for k := 0; k < n; k++ {
			j := k - i
			if j < 0 {
				j += n
			}
			out.Coeffs[k] += b.Coeffs[j]
		}
	}
	for _, i := range s.NegOnes {
		for k := 0; k < n; k++ {
			j := k - i
			if j < 0 {
				j += n
			}
			out.Coeffs[k] -= b.Coeffs[j]
		}
	}
	if modulus > 0 {
		out.reduceInPlace(modulus)
	}
	return out
}

// ToIntegerPolynomial materializes the dense ternary polynomial.
func (s *SparseTernaryPolynomial) ToIntegerPolynomial() *IntegerPolynomial {
	out := NewIntegerPolynomial(s.N)
	for _, i := range s.Ones {
		out.Coeffs[i] = 1
	}
	for _, i := range s.NegOnes {
		out.Coeffs[i] = -1
	}
	return out
}

// Clear overwrites both index arrays with zeros (in place, preserving
// slice length so a zeroized polynomial is indistinguishable in shape from
// one sampled at every-index-zero, per the spec's explicit-zeroize
// requirement for secrets).
func (s *SparseTernaryPolynomial) Clear() {
	for i := range s.Ones {
		s.Ones[i] = 0
	}
	for i := range s.NegOnes {
		s.NegOnes[i] = 0
	}
}

var _ Ternary = (*SparseTernaryPolynomial)(nil)

// ToBinary packs each index as ceil(log2(N)) bits, Ones list then NegOnes
// list, in list order.
func (s *SparseTernaryPolynomial) ToBinary() []byte {
	w := bitsFor(int64(s.N))
	var bw bitWriter
	for _, i := range s.Ones {
		bw.writeBits(uint64(i), w)
	}
	for _, i := range s.NegOnes {
		bw.writeBits(uint64(i), w)
	}
	return bw.bytes()
}

// SparseFromBinary unpacks numOnes+numNegOnes indices of ceil(log2(N)) bits
// each: the first numOnes form Ones, the remainder form NegOnes.
func SparseFromBinary(data []byte, n, numOnes, numNegOnes int) *SparseTernaryPolynomial {
	w := bitsFor(int64(n))
	br := newBitReader(data)
	ones := make([]int, numOnes)
	for i := range ones {
		ones[i] = int(br.readBits(w))
	}
	negOnes := make([]int, numNegOnes)
	for i := range negOnes {
		negOnes[i] = int(br.readBits(w))
	}
	return NewSparseTernaryPolynomial(n, ones, negOnes)
}
