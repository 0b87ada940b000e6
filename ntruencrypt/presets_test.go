package ntruencrypt

import "testing"

func TestPresetsValidate(t *testing.T) {
	builders := map[string]func() (ParamSet, error){
		"APR2011_439_FAST": APR2011_439_FAST,
		"APR2011_439":      APR2011_439,
		"APR2011_743_FAST": APR2011_743_FAST,
		"APR2011_743":      APR2011_743,
	}
	for name, build := range builders {
		p, err := build()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: Validate: %v", name, err)
		}
	}
}

func TestAllPresetsIncludesEveryName(t *testing.T) {
	all, err := AllPresets()
	if err != nil {
		t.Fatalf("AllPresets: %v", err)
	}
	want := []string{"APR2011_439_FAST", "APR2011_439", "APR2011_743_FAST", "APR2011_743"}
	for _, name := range want {
		if _, ok := all[name]; !ok {
			t.Fatalf("AllPresets missing %s", name)
		}
	}
}

func TestMaxMsgLenBytesWithinLimit(t *testing.T) {
	p, _ := APR2011_439_FAST()
	if p.MaxMsgLenBytes() <= 0 || p.MaxMsgLenBytes() > 255 {
		t.Fatalf("MaxMsgLenBytes() = %d, out of expected range", p.MaxMsgLenBytes())
	}
}
