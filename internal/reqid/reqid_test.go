package reqid

import (
	"regexp"
	"testing"
)

func TestNew_Length(t *testing.T) {
	id, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	wantLen := len(Prefix) + Length
	if len(id) != wantLen {
		t.Errorf("New() length = %d, want %d (id=%q)", len(id), wantLen, id)
	}
}

func TestNew_Charset(t *testing.T) {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(Prefix) + `[a-zA-Z0-9]+$`)
	for i := 0; i < 100; i++ {
		id, err := New()
		if err != nil {
			t.Fatalf("New() error on iteration %d: %v", i, err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("New() = %q, does not match expected charset pattern", id)
		}
	}
}

func TestNew_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id, err := New()
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		if seen[id] {
			t.Fatalf("New() produced duplicate %q", id)
		}
		seen[id] = true
	}
}
