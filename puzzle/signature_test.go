package puzzle

import (
	"strings"
	"testing"
)

func TestSignature(t *testing.T) {
	sig := Signature(classicStartValues)
	if len(sig) != 64 {
		t.Errorf("signature has length %d (expected 64 hex digits)", len(sig))
	}
	if sig != strings.ToUpper(sig) {
		t.Errorf("signature %q contains a non-uppercase letter", sig)
	}
	if Signature(classicStartValues) != sig {
		t.Errorf("signature is not deterministic")
	}
	changed := append([]int(nil), classicStartValues...)
	changed[0] = 7
	if Signature(changed) == sig {
		t.Errorf("different grids share a signature")
	}
	// digit boundaries must matter, not just the digit stream
	if Signature([]int{1, 23}) == Signature([]int{12, 3}) {
		t.Errorf("value boundaries do not affect the signature")
	}
}
