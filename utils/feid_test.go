package utils

import (
	"strings"
	"testing"
)

func TestNewFeIDFormat(t *testing.T) {
	id := NewFeID()
	if len(id) != feIDLen {
		t.Fatalf("len = %d, want %d", len(id), feIDLen)
	}
	for _, r := range id {
		if !strings.ContainsRune(feIDChars, r) {
			t.Errorf("unexpected character %q in fe_id %q", r, id)
		}
	}
}

func TestNewFeIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewFeID()
		if seen[id] {
			t.Fatalf("duplicate fe_id after %d draws: %q", i, id)
		}
		seen[id] = true
	}
}
