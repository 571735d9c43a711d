package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("expected parseable uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNew_Ordered(t *testing.T) {
	first := New()
	second := New()
	if first == second {
		t.Fatal("expected distinct ids")
	}
	if second < first {
		t.Errorf("expected %s to sort after %s", second, first)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(New()) {
		t.Error("expected generated id to be valid")
	}
	for _, bad := range []string{"", "not-a-uuid", "1234"} {
		if IsValid(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}
