package yamlsuite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/eulerseq/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadSuite_Valid(t *testing.T) {
	p := writeFile(t, t.TempDir(), "euler.yaml", `
name: euler
cases:
  - name: problem-12-small
    problem: triangle
    threshold: 5
    assert:
      max_ms: 1500
      jsonpath:
        $.value:
          eq: "28"
        $.divisors:
          gt: 5
  - name: first-primes
    problem: primes
    count: 5
    strategy: iterative
  - name: hundredth-prime
    problem: primes
    index: 100
  - name: divisors-of-28
    problem: divisors
    n: 28
`)

	s, err := NewLoader().LoadSuite(p)
	if err != nil {
		t.Fatalf("LoadSuite error: %v", err)
	}
	if s.Name != "euler" {
		t.Fatalf("expected name=euler, got=%s", s.Name)
	}
	if len(s.Cases) != 4 {
		t.Fatalf("expected 4 cases, got=%d", len(s.Cases))
	}

	tri := s.Cases[0]
	if tri.Spec.Problem != domain.ProblemTriangle || tri.Spec.Threshold != 5 {
		t.Fatalf("unexpected triangle spec: %+v", tri.Spec)
	}
	if tri.Assert.MaxMS == nil || *tri.Assert.MaxMS != 1500 {
		t.Fatalf("expected max_ms=1500")
	}
	if a, ok := tri.Assert.JSONPath["$.value"]; !ok || a.Eq == nil || *a.Eq != "28" {
		t.Fatalf("expected $.value eq 28, got %+v", tri.Assert.JSONPath)
	}
	if a := tri.Assert.JSONPath["$.divisors"]; a.Gt == nil || *a.Gt != 5 {
		t.Fatalf("expected $.divisors gt 5, got %+v", a)
	}

	if got := s.Cases[1].Spec; got.Count != 5 || got.Strategy != "iterative" {
		t.Fatalf("unexpected primes spec: %+v", got)
	}
	if got := s.Cases[2].Spec; got.Index != 100 || got.Count != 0 {
		t.Fatalf("unexpected index spec: %+v", got)
	}
	if got := s.Cases[3].Spec; got.N != 28 {
		t.Fatalf("unexpected divisors spec: %+v", got)
	}
	if s.Cases[3].Assert.JSONPath == nil {
		t.Fatalf("expected empty (non-nil) jsonpath map")
	}
}

func TestLoadSuite_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		field   string
	}{
		{"missing suite name", "cases: []\n", "field name"},
		{"missing case name", "name: s\ncases:\n  - problem: triangle\n    threshold: 1\n", "cases[0].name"},
		{"unknown problem", "name: s\ncases:\n  - name: a\n    problem: fibonacci\n", "cases[0].problem"},
		{"primes without count", "name: s\ncases:\n  - name: a\n    problem: primes\n", "cases[0]"},
		{"triangle without threshold", "name: s\ncases:\n  - name: a\n    problem: triangle\n", "cases[0].threshold"},
		{"divisors without n", "name: s\ncases:\n  - name: a\n    problem: divisors\n", "cases[0].n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "s.yaml", c.content)
			_, err := NewLoader().LoadSuite(p)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Fatalf("expected error to mention %q, got %v", c.field, err)
			}
		})
	}
}

func TestLoadSuite_NotFound(t *testing.T) {
	_, err := NewLoader().LoadSuite(filepath.Join(t.TempDir(), "missing.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadSuite_InvalidYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.yaml", "name: [oops\n")
	_, err := NewLoader().LoadSuite(p)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestListSuites(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "problems")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "b.yaml", "name: zeta\ncases: []\n")
	writeFile(t, dir, "a.yml", "cases: []\n")
	writeFile(t, dir, "notes.txt", "ignore me")

	refs, err := NewLoader(WithSuitesDir("problems")).ListSuites(root)
	if err != nil {
		t.Fatalf("ListSuites error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %+v", refs)
	}
	// "a" comes from the file name because the suite has no name field.
	if refs[0].Name != "a" || refs[1].Name != "zeta" {
		t.Fatalf("unexpected order/names: %+v", refs)
	}
	if refs[1].Path != filepath.Join(dir, "b.yaml") {
		t.Fatalf("unexpected path: %s", refs[1].Path)
	}
}

func TestListSuites_MissingDir(t *testing.T) {
	_, err := NewLoader().ListSuites(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
