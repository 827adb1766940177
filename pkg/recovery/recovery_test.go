package recovery

import (
	"errors"
	"strings"
	"testing"
)

// TestGenerateShape tests code count, format, and alphabet
func TestGenerateShape(t *testing.T) {
	codes, err := Generate(DefaultCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(codes) != DefaultCount {
		t.Fatalf("expected %d codes, got %d", DefaultCount, len(codes))
	}

	for _, code := range codes {
		groups := strings.Split(code, "-")
		if len(groups) != 3 {
			t.Fatalf("code %q: expected 3 groups", code)
		}
		for _, group := range groups {
			if len(group) != 4 {
				t.Fatalf("code %q: expected 4-character groups", code)
			}
			for _, c := range group {
				if !strings.ContainsRune(alphabet, c) {
					t.Errorf("code %q: character %c outside alphabet", code, c)
				}
			}
		}
	}
}

// TestGenerateUnique tests that issued codes are distinct
func TestGenerateUnique(t *testing.T) {
	codes, err := Generate(50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			t.Errorf("duplicate code %q", code)
		}
		seen[code] = struct{}{}
	}
}

// TestGenerateInvalidCount tests rejection of non-positive counts
func TestGenerateInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		if _, err := Generate(count); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: expected ErrInvalidCount, got %v", count, err)
		}
	}
}
