package primes

import (
	"errors"
	"testing"

	"github.com/aalvaropc/eulerseq/internal/domain"
	"github.com/aalvaropc/eulerseq/internal/lazy"
	"github.com/google/go-cmp/cmp"
)

func TestSieve_FirstFive(t *testing.T) {
	if diff := cmp.Diff([]int{2, 3, 5, 7, 11}, lazy.Slice(Sieve(), 5)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestTrial_FirstFive(t *testing.T) {
	if diff := cmp.Diff([]int{2, 3, 5, 7, 11}, lazy.Slice(Trial(), 5)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestStrategies_PrimeAndIncreasing(t *testing.T) {
	for _, tc := range []struct {
		name string
		seq  lazy.Seq[int]
		n    int
	}{
		{"recursive", Sieve(), 300},
		{"iterative", Trial(), 2000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			prev := 1
			i := 0
			for p := range lazy.Take(tc.seq, tc.n).All() {
				i++
				if !IsPrime(p) {
					t.Fatalf("element %d = %d is not prime", i, p)
				}
				if p <= prev {
					t.Fatalf("element %d = %d is not greater than %d", i, p, prev)
				}
				prev = p
			}
			if i != tc.n {
				t.Fatalf("expected %d elements, got %d", tc.n, i)
			}
		})
	}
}

func TestStrategies_Agree(t *testing.T) {
	a := lazy.Slice(Sieve(), 500)
	b := lazy.Slice(Trial(), 500)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("recursive and iterative disagree (-recursive +iterative):\n%s", diff)
	}
}

func TestStrategies_NoPrimeSkipped(t *testing.T) {
	var want []int
	for n := 2; n < 2000; n++ {
		if IsPrime(n) {
			want = append(want, n)
		}
	}
	got := lazy.Collect(lazy.TakeWhile(Trial(), func(p int) bool { return p < 2000 }))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestSieve_Idempotent(t *testing.T) {
	s := Sieve()
	first := lazy.Slice(s, 50)
	second := lazy.Slice(s, 50)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-reading changed the sequence (-first +second):\n%s", diff)
	}

	fresh := lazy.Slice(Sieve(), 50)
	if diff := cmp.Diff(first, fresh); diff != "" {
		t.Fatalf("a new sequence differs from the first one (-first +fresh):\n%s", diff)
	}
}

func TestNth(t *testing.T) {
	for _, st := range []string{"recursive", "iterative"} {
		seq, err := New(st)
		if err != nil {
			t.Fatalf("New(%q): %v", st, err)
		}
		got, err := Nth(seq, 100)
		if err != nil {
			t.Fatalf("Nth: %v", err)
		}
		if got != 541 {
			t.Fatalf("%s: 100th prime = %d, want 541", st, got)
		}
	}
}

func TestNth_InvalidIndex(t *testing.T) {
	_, err := Nth(Sieve(), 0)
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
	}{
		{"", Recursive},
		{"recursive", Recursive},
		{" Iterative ", Iterative},
	}
	for _, c := range cases {
		got, err := ParseStrategy(c.in)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseStrategy(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := New("wheel")
	if !domain.IsKind(err, domain.KindUnsupported) {
		t.Fatalf("expected unsupported kind, got %v", err)
	}
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Fatalf("expected errors.Is(ErrUnsupported), got %v", err)
	}
}

func TestIsPrime(t *testing.T) {
	cases := map[int]bool{
		-7: false, 0: false, 1: false, 2: true, 3: true, 4: false,
		9: false, 25: false, 97: true, 541: true, 7919: true, 7921: false,
	}
	for n, want := range cases {
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d) = %v, want %v", n, got, want)
		}
	}
}
