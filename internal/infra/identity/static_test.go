package identity

import "testing"

func TestStatic(t *testing.T) {
	if got := NewStatic("").UserID(); got != "test" {
		t.Fatalf("expected default id test, got %q", got)
	}
	if got := NewStatic(" alice ").UserID(); got != "alice" {
		t.Fatalf("expected alice, got %q", got)
	}
}
