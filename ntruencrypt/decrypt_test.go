package ntruencrypt

import (
	"testing"

	"ntrugo/ntru/ternary"
)

// TestS5TamperDetection is scenario S5: flipping a single bit of a valid
// ciphertext must cause decrypt to reject it, for at least 99% of 200
// flips spread over the ciphertext's bytes.
func TestS5TamperDetection(t *testing.T) {
	p, err := APR2011_439_FAST()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	src := ternary.NewDeterministicSource(300)
	kp, err := GenerateKeyPair(p, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("tamper me")
	ct, err := Encrypt(kp.Public, msg, src)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	trials := 200
	failures := 0
	for i := 0; i < trials; i++ {
		tampered := append([]byte(nil), ct...)
		byteIdx := i % len(tampered)
		bitIdx := uint(i % 8)
		tampered[byteIdx] ^= 1 << bitIdx

		kpCopy := kp
		if _, err := Decrypt(kpCopy, tampered); err != nil {
			failures++
			continue
		}
	}
	if float64(failures)/float64(trials) < 0.99 {
		t.Fatalf("tamper detection rate too low: %d/%d rejected", failures, trials)
	}
}

// TestS6KeygenSucceedsAcrossSeeds runs GenerateKeyPair for 50 seeds and
// requires every run to succeed. No inversion failure is injected, so the
// retry path is exercised only when a seed happens to draw a
// non-invertible candidate.
func TestS6KeygenSucceedsAcrossSeeds(t *testing.T) {
	p, err := APR2011_439_FAST()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	for seed := int64(0); seed < 50; seed++ {
		src := ternary.NewDeterministicSource(seed)
		if _, err := GenerateKeyPair(p, src); err != nil {
			t.Fatalf("seed %d: GenerateKeyPair: %v", seed, err)
		}
	}
}

func TestDecryptRejectsShortBuffer(t *testing.T) {
	p, err := APR2011_439_FAST()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	src := ternary.NewDeterministicSource(301)
	kp, err := GenerateKeyPair(p, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if _, err := Decrypt(kp, []byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error decrypting a too-short buffer")
	}
}
