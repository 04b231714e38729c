package internal

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode(10)
		if err != nil {
			t.Fatalf("GenerateCode failed: %v", err)
		}
		if len(code) != 10 {
			t.Fatalf("expected 10 characters, got %q", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Fatalf("character %q outside the alphabet in %q", c, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 49 {
		t.Fatalf("expected ~unique codes, got %d distinct out of 50", len(seen))
	}
}

func TestGenerateCodeLengthBounds(t *testing.T) {
	for _, length := range []int{0, 5, 33, -1} {
		if _, err := GenerateCode(length); err == nil {
			t.Fatalf("length %d must be rejected", length)
		}
	}
	for _, length := range []int{6, 32} {
		code, err := GenerateCode(length)
		if err != nil {
			t.Fatalf("length %d must be accepted: %v", length, err)
		}
		if len(code) != length {
			t.Fatalf("expected %d characters, got %d", length, len(code))
		}
	}
}
