package poly

// ProductFormPolynomial represents f1*f2+f3 in R, where each fi is a sparse
// ternary polynomial. The product f1*f2 is never materialized as a dense
// ternary polynomial (it generally is not ternary); multiplication by a
// dense polynomial b is always computed through the fold
// ((f1.Mult(b)).Mult(f2)) + f3.Mult(b) (see Mult below).
type ProductFormPolynomial struct {
	N          int
	F1, F2, F3 *SparseTernaryPolynomial
}

// NewProductFormPolynomial assembles a ProductFormPolynomial from its three
// sparse ternary factors.
func NewProductFormPolynomial(n int, f1, f2, f3 *SparseTernaryPolynomial) *ProductFormPolynomial {
	return &ProductFormPolynomial{N: n, F1: f1, F2: f2, F3: f3}
}

// GenerateRandomProductForm samples three independent sparse ternary
// polynomials of the given weights.
func GenerateRandomProductForm(n, df1, df2, df3ones, df3negOnes int, src Source) *ProductFormPolynomial {
	f1 := GenerateRandomSparseTernary(n, df1, df1, src)
	f2 := GenerateRandomSparseTernary(n, df2, df2, src)
	f3 := GenerateRandomSparseTernary(n, df3ones, df3negOnes, src)
	return &ProductFormPolynomial{N: n, F1: f1, F2: f2, F3: f3}
}

// Mult computes y = f1*b; z = f2*y; w = f3*b; returns z+w. The intermediate
// y may have coefficients outside {-1,0,1}; no reduction happens until the
// caller supplies modulus.
func (pf *ProductFormPolynomial) Mult(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	y := pf.F1.Mult(b, 0)
	z := pf.F2.Mult(y, 0)
	w := pf.F3.Mult(b, 0)
	return z.Add(w, modulus)
}

// ToIntegerPolynomial materializes f1*f2+f3 as a dense polynomial (no
// modulus reduction).
func (pf *ProductFormPolynomial) ToIntegerPolynomial() *IntegerPolynomial {
	f1Dense := pf.F1.ToIntegerPolynomial()
	y := f1Dense.Mult(pf.F2.ToIntegerPolynomial(), 0)
	w := pf.F3.ToIntegerPolynomial()
	return y.Add(w, 0)
}

// Clear zeroizes all three factors.
func (pf *ProductFormPolynomial) Clear() {
	pf.F1.Clear()
	pf.F2.Clear()
	pf.F3.Clear()
}

var _ Ternary = (*ProductFormPolynomial)(nil)

// ToBinary concatenates the three sparse encodings in the fixed order
// f1, f2, f3.
func (pf *ProductFormPolynomial) ToBinary() []byte {
	out := pf.F1.ToBinary()
	out = append(out, pf.F2.ToBinary()...)
	out = append(out, pf.F3.ToBinary()...)
	return out
}

// ProductFormWeights names the six weights needed to decode a product-form
// binary encoding (f1 and f2 use symmetric weights; f3 need not be
// balanced).
type ProductFormWeights struct {
	N                        int
	DF1, DF2                 int
	DF3Ones, DF3NegOnes      int
}

// ProductFormFromBinary decodes a ProductFormPolynomial per w, assuming
// each fi is bit-exact per SparseFromBinary and each of the three encodings
// starts on a byte boundary, as ToBinary writes them.
func ProductFormFromBinary(data []byte, w ProductFormWeights) *ProductFormPolynomial {
	bitsPerIdx := bitsFor(int64(w.N))
	f1Bits := bitsPerIdx * 2 * w.DF1
	f2Bits := bitsPerIdx * 2 * w.DF2
	f1Bytes := (f1Bits + 7) / 8
	f2Bytes := (f2Bits + 7) / 8

	f1 := SparseFromBinary(data, w.N, w.DF1, w.DF1)
	f2 := SparseFromBinary(data[f1Bytes:], w.N, w.DF2, w.DF2)
	f3 := SparseFromBinary(data[f1Bytes+f2Bytes:], w.N, w.DF3Ones, w.DF3NegOnes)
	return &ProductFormPolynomial{N: w.N, F1: f1, F2: f2, F3: f3}
}
