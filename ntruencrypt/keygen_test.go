package ntruencrypt

import (
	"testing"

	"ntrugo/ntru/ternary"
)

func TestGenerateKeyPairInvariants(t *testing.T) {
	p, err := APR2011_439_FAST()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	src := ternary.NewDeterministicSource(1)
	kp, err := GenerateKeyPair(p, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if kp.Public.H.N() != p.N {
		t.Fatalf("h has N=%d, want %d", kp.Public.H.N(), p.N)
	}
	for _, c := range kp.Public.H.Coeffs {
		if c < 0 || c >= p.Q {
			t.Fatalf("h coefficient %d out of [0,q) range", c)
		}
	}

	f := kp.Private.F()
	fq, ok := f.InvertFq(p.Q)
	if !ok {
		t.Fatal("reconstructed f is not invertible mod q")
	}
	prod := f.Mult(fq, p.Q)
	if prod.Coeffs[0] != 1 {
		t.Fatalf("f*fq mod q = %v, want constant 1", prod)
	}
	for i := 1; i < prod.N(); i++ {
		if prod.Coeffs[i] != 0 {
			t.Fatalf("f*fq mod q = %v, want constant 1", prod)
		}
	}
}

func TestGenerateKeyPairRejectsInvalidParams(t *testing.T) {
	p, _ := APR2011_439_FAST()
	p.N = 440 // not prime
	src := ternary.NewDeterministicSource(2)
	if _, err := GenerateKeyPair(p, src); err == nil {
		t.Fatal("expected error for invalid parameter set")
	}
}
