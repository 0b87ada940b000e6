// Package ternary provides RNG capability implementations that satisfy
// poly.Source, injected into keygen/encrypt rather than referenced as a
// global crypto provider, per spec.md's design notes.
package ternary

import (
	crand "crypto/rand"
	mrand "math/rand"
)

// CryptoSource fills buffers from crypto/rand; this is the production
// default everywhere a Source is required.
type CryptoSource struct{}

// FillRandom fills buf with cryptographically secure random bytes.
func (CryptoSource) FillRandom(buf []byte) error {
	_, err := crand.Read(buf)
	return err
}

// DeterministicSource wraps a math/rand.Rand for reproducible tests,
// generalizing the teacher's RNG wrapper (ntru/rng.go) to the poly.Source
// capability interface. It must never be used for production key material.
type DeterministicSource struct {
	r *mrand.Rand
}

// NewDeterministicSource builds a DeterministicSource seeded for test
// reproducibility.
func NewDeterministicSource(seed int64) *DeterministicSource {
	return &DeterministicSource{r: mrand.New(mrand.NewSource(seed))}
}

// FillRandom fills buf from the deterministic generator.
func (s *DeterministicSource) FillRandom(buf []byte) error {
	_, err := s.r.Read(buf)
	return err
}
