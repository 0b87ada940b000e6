package igf

import "testing"

func TestGeneratorDeterministic(t *testing.T) {
	seed := []byte("test-seed")
	g1 := NewGenerator(seed, 439, 9, 32)
	g2 := NewGenerator(seed, 439, 9, 32)
	for i := 0; i < 200; i++ {
		a := g1.NextIndex()
		b := g2.NextIndex()
		if a != b {
			t.Fatalf("index %d diverged: %d vs %d", i, a, b)
		}
		if a < 0 || a >= 439 {
			t.Fatalf("index %d out of range: %d", i, a)
		}
	}
}

func TestGeneratorDistribution(t *testing.T) {
	const n = 50
	seed := []byte("distribution-seed")
	g := NewGenerator(seed, n, 6, 1)
	counts := make([]int, n)
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[g.NextIndex()]++
	}
	expected := float64(draws) / float64(n)
	var chiSq float64
	for _, c := range counts {
		d := float64(c) - expected
		chiSq += d * d / expected
	}
	// Critical value for 49 degrees of freedom at alpha=0.01 is ~74.9.
	if chiSq > 90 {
		t.Fatalf("chi-square too large: %f", chiSq)
	}
}

func TestMaskGenDeterministic(t *testing.T) {
	input := []byte("mask-input")
	a := MaskGen(input, 439, 32)
	b := MaskGen(input, 439, 32)
	if !a.Equal(b) {
		t.Fatalf("MaskGen not deterministic")
	}
	if a.N() != 439 {
		t.Fatalf("N = %d, want 439", a.N())
	}
}
