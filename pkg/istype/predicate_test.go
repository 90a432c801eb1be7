package istype

import (
	"strings"
	"testing"
)

func TestBoth_AndSemantics(t *testing.T) {
	t.Parallel()

	p, err := Both(Predicate(Never), Predicate(Always))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range []any{nil, 0, "", []string{"a"}, map[string]int{}} {
		if p(v) {
			t.Fatalf("false AND true must be false for %v", v)
		}
	}
}

func TestBoth_BothTrue(t *testing.T) {
	t.Parallel()

	p, err := Both(Predicate(Always), Predicate(Always))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p("anything") {
		t.Fatalf("true AND true must be true")
	}
}

func TestBoth_AcceptsPlainFunc(t *testing.T) {
	t.Parallel()

	isInt := func(v any) bool { _, ok := v.(int); return ok }
	positive := func(v any) bool { n, ok := v.(int); return ok && n > 0 }

	p, err := Both(isInt, positive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p(3) || p(-1) || p("3") {
		t.Fatalf("composition of plain funcs misbehaved")
	}
}

func TestBoth_RejectsNilFirst(t *testing.T) {
	t.Parallel()

	_, err := Both(nil, Predicate(Always))
	if err == nil {
		t.Fatalf("expected error for nil first argument")
	}
	if !strings.Contains(err.Error(), "first") || !strings.Contains(err.Error(), "nil") {
		t.Fatalf("error must name the first argument and report nil, got: %v", err)
	}
}

func TestBoth_RejectsNonCallableSecond(t *testing.T) {
	t.Parallel()

	_, err := Both(Predicate(Always), 42)
	if err == nil {
		t.Fatalf("expected error for non-callable second argument")
	}
	if !strings.Contains(err.Error(), "second") || !strings.Contains(err.Error(), "int") {
		t.Fatalf("error must name the second argument and its type, got: %v", err)
	}
}

func TestBoth_RejectsWrongFuncShape(t *testing.T) {
	t.Parallel()

	_, err := Both(func(s string) bool { return true }, Predicate(Always))
	if err == nil {
		t.Fatalf("expected error for a func that does not take any")
	}
}

func TestMustBoth_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustBoth to panic on a non-callable argument")
		}
	}()
	MustBoth("not a predicate", Predicate(Always))
}

func TestEither_OrSemantics(t *testing.T) {
	t.Parallel()

	p, err := Either(Predicate(Never), Predicate(Always))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p(1) {
		t.Fatalf("false OR true must be true")
	}

	q, err := Either(Predicate(Never), Predicate(Never))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q(1) {
		t.Fatalf("false OR false must be false")
	}
}

func TestEither_RejectsNonCallable(t *testing.T) {
	t.Parallel()

	_, err := Either(3.14, Predicate(Always))
	if err == nil || !strings.Contains(err.Error(), "first") {
		t.Fatalf("expected error naming the first argument, got: %v", err)
	}
}

func TestNot(t *testing.T) {
	t.Parallel()

	if Not(Always)(1) {
		t.Fatalf("negated Always must reject")
	}
	if !Not(Never)(1) {
		t.Fatalf("negated Never must accept")
	}
}

func TestNot_NilAcceptsEverything(t *testing.T) {
	t.Parallel()

	p := Not(nil)
	for _, v := range []any{nil, 0, "x", []int{1}} {
		if !p(v) {
			t.Fatalf("negating a nil predicate must accept %v", v)
		}
	}
}
