package format

import "testing"

func TestIsUUID(t *testing.T) {
	t.Parallel()

	if !IsUUID("4f74b8a9-3a6f-4bd6-b2c1-8a1f0d2f9c3e") {
		t.Fatalf("expected a canonical UUID to pass")
	}
	if !IsUUID([]byte("4f74b8a9-3a6f-4bd6-b2c1-8a1f0d2f9c3e")) {
		t.Fatalf("expected a byte-slice UUID to pass")
	}
	for _, v := range []any{"not-a-uuid", "", 42, nil, true} {
		if IsUUID(v) {
			t.Fatalf("expected %v to fail", v)
		}
	}
}

func TestIsSemVer(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"1.2.3", "0.1.0-alpha.1", "2.0.0+build.7"} {
		if !IsSemVer(s) {
			t.Fatalf("expected %q to pass", s)
		}
	}
	for _, v := range []any{"v1.2.3", "1.2", "one.two.three", "", nil, 1.23} {
		if IsSemVer(v) {
			t.Fatalf("expected %v to fail", v)
		}
	}
}

func TestIsGlob(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"**/*.go", "cmd/{a,b}/main.go", "literal.txt"} {
		if !IsGlob(s) {
			t.Fatalf("expected %q to pass", s)
		}
	}
	for _, v := range []any{"a[", nil, 9} {
		if IsGlob(v) {
			t.Fatalf("expected %v to fail", v)
		}
	}
}

func TestIsJSON(t *testing.T) {
	t.Parallel()

	for _, v := range []any{`{"a": 1}`, `[1, 2, 3]`, `"quoted"`, []byte(`null`)} {
		if !IsJSON(v) {
			t.Fatalf("expected %v to pass", v)
		}
	}
	for _, v := range []any{`{"a": }`, "", nil, 42} {
		if IsJSON(v) {
			t.Fatalf("expected %v to fail", v)
		}
	}
}

func TestIsYAML(t *testing.T) {
	t.Parallel()

	for _, v := range []any{"a: 1\nb:\n  - x\n  - y\n", "plain scalar", []byte("k: v")} {
		if !IsYAML(v) {
			t.Fatalf("expected %v to pass", v)
		}
	}
	for _, v := range []any{"a: [1,", "{unclosed: ", nil, 42} {
		if IsYAML(v) {
			t.Fatalf("expected %v to fail", v)
		}
	}
}
