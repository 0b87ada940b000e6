package ntruencrypt

// Presets exposes the named parameter sets referenced by spec.md's test
// scenarios (S1, S4): APR2011_439_FAST and APR2011_743 and their
// ProductForm/non-fastFp siblings. The parameter catalog proper is an
// external, out-of-scope asset (spec.md section 1); these are the
// illustrative IEEE-1363.1-style values needed to exercise the engine end
// to end, in the shape of the teacher's PresetPower2_*/PresetSmooth3_*
// constructors.

// APR2011_439_FAST returns the fast (fastFp, product-form) N=439 parameter
// set.
func APR2011_439_FAST() (ParamSet, error) {
	p := ParamSet{
		N: 439, Q: 2048, P: 3,
		Df: 9, Dr: 9, Dg: 146,
		ProductForm: true,
		DF1:         9, DF2: 8, DF3Ones: 5, DF3NegOnes: 5,
		Db: 112, Dm0: 112,
		C:            9,
		MinCallsR:    32,
		MinCallsMask: 9,
		OID:          [3]byte{0x00, 0x02, 0x10},
		Sparse:       true,
		FastFp:       true,
	}
	return p, p.Validate()
}

// APR2011_439 returns the non-product-form, non-fastFp N=439 parameter set.
func APR2011_439() (ParamSet, error) {
	p := ParamSet{
		N: 439, Q: 2048, P: 3,
		Df: 146, Dr: 146, Dg: 146,
		Db: 112, Dm0: 112,
		C:            9,
		MinCallsR:    32,
		MinCallsMask: 9,
		OID:          [3]byte{0x00, 0x03, 0x10},
		Sparse:       true,
		FastFp:       false,
	}
	return p, p.Validate()
}

// APR2011_743_FAST returns the fast (fastFp, product-form) N=743 parameter
// set.
func APR2011_743_FAST() (ParamSet, error) {
	p := ParamSet{
		N: 743, Q: 2048, P: 3,
		Df: 11, Dr: 11, Dg: 248,
		ProductForm: true,
		DF1:         11, DF2: 11, DF3Ones: 15, DF3NegOnes: 15,
		Db: 248, Dm0: 220,
		C:            11,
		MinCallsR:    27,
		MinCallsMask: 9,
		OID:          [3]byte{0x00, 0x05, 0x10},
		Sparse:       true,
		FastFp:       true,
	}
	return p, p.Validate()
}

// APR2011_743 returns the non-product-form, non-fastFp N=743 parameter
// set, used by spec.md scenario S4.
func APR2011_743() (ParamSet, error) {
	p := ParamSet{
		N: 743, Q: 2048, P: 3,
		Df: 248, Dr: 248, Dg: 248,
		Db: 248, Dm0: 220,
		C:            11,
		MinCallsR:    27,
		MinCallsMask: 9,
		OID:          [3]byte{0x00, 0x06, 0x10},
		Sparse:       true,
		FastFp:       false,
	}
	return p, p.Validate()
}

// AllPresets lists every named preset, for sweeps and benchmarks.
func AllPresets() (map[string]ParamSet, error) {
	out := map[string]ParamSet{}
	builders := map[string]func() (ParamSet, error){
		"APR2011_439_FAST": APR2011_439_FAST,
		"APR2011_439":      APR2011_439,
		"APR2011_743_FAST": APR2011_743_FAST,
		"APR2011_743":      APR2011_743,
	}
	for name, build := range builders {
		p, err := build()
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}
