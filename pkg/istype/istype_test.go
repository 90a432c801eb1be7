package istype

import (
	"testing"
)

func TestIs_NominalMatch(t *testing.T) {
	t.Parallel()

	if !Is[string]("hello") {
		t.Fatalf("expected Is[string] to accept a string")
	}
	if Is[string](42) {
		t.Fatalf("expected Is[string] to reject an int")
	}
	if Is[string](nil) {
		t.Fatalf("expected Is[string] to reject nil")
	}
}

func TestIs_InterfaceMatch(t *testing.T) {
	t.Parallel()

	if !Is[error](errFixture{}) {
		t.Fatalf("expected Is[error] to accept an error implementation")
	}
	if Is[error]("nope") {
		t.Fatalf("expected Is[error] to reject a plain string")
	}
	if !Is[any](42) {
		t.Fatalf("expected Is[any] to accept anything non-nil")
	}
}

type errFixture struct{}

func (errFixture) Error() string { return "fixture" }

func TestTypeName(t *testing.T) {
	t.Parallel()

	if got := TypeName(nil); got != "nil" {
		t.Fatalf("expected nil to report as %q, got %q", "nil", got)
	}
	if got := TypeName(42); got != "int" {
		t.Fatalf("expected int, got %q", got)
	}
	if got := TypeName("x"); got != "string" {
		t.Fatalf("expected string, got %q", got)
	}
}

func TestAlwaysNever(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, 0, "", []int{1}, struct{}{}} {
		if !Always(v) {
			t.Fatalf("Always rejected %v", v)
		}
		if Never(v) {
			t.Fatalf("Never accepted %v", v)
		}
	}
}
