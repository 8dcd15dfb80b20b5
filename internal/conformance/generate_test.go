package conformance

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateArgConstraints(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		s := GenerateArg(rng)
		n := utf8.RuneCountInString(s)
		if n < 1 || n > 16 {
			t.Fatalf("length %d out of range: %q", n, s)
		}
		if s == "--version" || s == "-V" {
			t.Fatalf("generated accepted flag %q", s)
		}
		if strings.ContainsRune(s, 0) {
			t.Fatalf("generated NUL: %q", s)
		}
		if !utf8.ValidString(s) {
			t.Fatalf("invalid utf8: %q", s)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(7, 20)
	b := Generate(7, 20)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different cases")
	}
	if len(a) != 20 {
		t.Fatalf("len: %d", len(a))
	}
	for _, c := range a {
		if c.ExitCode != 2 || c.StderrContains != UsageMarker || c.Stdout != nil || len(c.Args) != 1 {
			t.Fatalf("unexpected case: %+v", c)
		}
	}
	if a[0].Name != "unknown-argument-000" || a[19].Name != "unknown-argument-019" {
		t.Fatalf("unexpected names: %s %s", a[0].Name, a[19].Name)
	}
}

func TestGenerateZero(t *testing.T) {
	if got := Generate(1, 0); len(got) != 0 {
		t.Fatalf("expected no cases, got %d", len(got))
	}
}
