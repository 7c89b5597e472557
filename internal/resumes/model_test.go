package resumes

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewGeneratesUUID(t *testing.T) {
	r := New("  Grace Hopper ")
	if _, err := uuid.Parse(r.UUID); err != nil {
		t.Fatalf("expected valid uuid, got %q: %v", r.UUID, err)
	}
	if r.FullName != "Grace Hopper" {
		t.Fatalf("expected trimmed full name, got %q", r.FullName)
	}
	if other := New("Grace Hopper"); other.UUID == r.UUID {
		t.Fatalf("expected distinct uuids, got %s twice", r.UUID)
	}
}

func TestEqualityIsSeparateFromKeyMatch(t *testing.T) {
	a := WithUUID("uuid1", "Ada Lovelace")
	b := WithUUID("uuid1", "Ada King")

	if !a.HasUUID(b.UUID) {
		t.Fatalf("expected key match for %s", b.UUID)
	}
	if a.Equal(b) {
		t.Fatalf("expected %v and %v to differ", a, b)
	}
	if !a.Equal(WithUUID("uuid1", "Ada Lovelace")) {
		t.Fatalf("expected equal resumes")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Resume
		want string
	}{
		{name: "uuid only", in: WithUUID("uuid1", ""), want: "uuid1"},
		{name: "uuid and name", in: WithUUID("uuid1", "Ada"), want: "uuid1 Ada"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
