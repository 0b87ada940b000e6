package ntruencrypt

import (
	"ntrugo/ntru/igf"
	"ntrugo/ntru/poly"
)

// generateBlindingPoly draws the blinding polynomial r from an IGF seeded
// with sData (index width Params.C): Dr distinct positions set to +1, then
// Dr further distinct positions set to -1.
func generateBlindingPoly(p ParamSet, sData []byte) *poly.SparseTernaryPolynomial {
	gen := igf.NewGenerator(sData, p.N, p.C, p.MinCallsR)

	taken := make(map[int]bool, 2*p.Dr)
	ones := make([]int, 0, p.Dr)
	for len(ones) < p.Dr {
		i := gen.NextIndex()
		if taken[i] {
			continue
		}
		taken[i] = true
		ones = append(ones, i)
	}
	negOnes := make([]int, 0, p.Dr)
	for len(negOnes) < p.Dr {
		i := gen.NextIndex()
		if taken[i] {
			continue
		}
		taken[i] = true
		negOnes = append(negOnes, i)
	}
	return poly.NewSparseTernaryPolynomial(p.N, ones, negOnes)
}
