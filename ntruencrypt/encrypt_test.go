package ntruencrypt

import (
	"bytes"
	"testing"

	"ntrugo/ntru/ternary"
)

// TestS1HelloWorld is scenario S1: keygen -> encrypt -> decrypt recovers the
// exact message under the fast 439 preset.
func TestS1HelloWorld(t *testing.T) {
	p, err := APR2011_439_FAST()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	src := ternary.NewDeterministicSource(100)
	kp, err := GenerateKeyPair(p, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	msg := []byte("hello world")
	ct, err := Encrypt(kp.Public, msg, src)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := Decrypt(kp, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, msg) {
		t.Fatalf("recovered %q, want %q", pt, msg)
	}
}

// TestS4EmptyMessage is scenario S4: an empty message round-trips under
// APR2011_743.
func TestS4EmptyMessage(t *testing.T) {
	p, err := APR2011_743()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	src := ternary.NewDeterministicSource(101)
	kp, err := GenerateKeyPair(p, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	ct, err := Encrypt(kp.Public, nil, src)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := Decrypt(kp, ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if len(pt) != 0 {
		t.Fatalf("recovered %q, want empty", pt)
	}
}

func TestEncryptRejectsOversizeMessage(t *testing.T) {
	p, err := APR2011_439_FAST()
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	src := ternary.NewDeterministicSource(102)
	kp, err := GenerateKeyPair(p, src)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	oversize := make([]byte, p.MaxMsgLenBytes()+1)
	if _, err := Encrypt(kp.Public, oversize, src); err == nil {
		t.Fatal("expected InvalidArgument for oversize message")
	}
}

func TestAllPresetsEncryptDecryptRoundTrip(t *testing.T) {
	presets, err := AllPresets()
	if err != nil {
		t.Fatalf("AllPresets: %v", err)
	}
	for name, p := range presets {
		p := p
		t.Run(name, func(t *testing.T) {
			src := ternary.NewDeterministicSource(200)
			kp, err := GenerateKeyPair(p, src)
			if err != nil {
				t.Fatalf("GenerateKeyPair: %v", err)
			}
			msg := []byte("ntru round trip")
			if len(msg) > p.MaxMsgLenBytes() {
				msg = msg[:p.MaxMsgLenBytes()]
			}
			ct, err := Encrypt(kp.Public, msg, src)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			pt, err := Decrypt(kp, ct)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if !bytes.Equal(pt, msg) {
				t.Fatalf("recovered %q, want %q", pt, msg)
			}
		})
	}
}
