package divisors

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func bruteForce(n int64) []int64 {
	var out []int64
	for i := int64(1); i <= n; i++ {
		if n%i == 0 {
			out = append(out, i)
		}
	}
	return out
}

func TestOf_Known(t *testing.T) {
	cases := []struct {
		n    int64
		want []int64
	}{
		{1, []int64{1}},
		{3, []int64{1, 3}},
		{6, []int64{1, 2, 3, 6}},
		{10, []int64{1, 2, 5, 10}},
		{15, []int64{1, 3, 5, 15}},
		{21, []int64{1, 3, 7, 21}},
		{28, []int64{1, 2, 4, 7, 14, 28}},
		{36, []int64{1, 2, 3, 4, 6, 9, 12, 18, 36}},
	}
	for _, c := range cases {
		if diff := cmp.Diff(c.want, Of(c.n)); diff != "" {
			t.Errorf("Of(%d) (-want +got):\n%s", c.n, diff)
		}
	}
}

func TestOf_NonPositive(t *testing.T) {
	for _, n := range []int64{0, -1, -28} {
		if got := Of(n); got != nil {
			t.Errorf("Of(%d) = %v, want nil", n, got)
		}
		if got := Count(n); got != 0 {
			t.Errorf("Count(%d) = %d, want 0", n, got)
		}
	}
}

func TestCount_MatchesBruteForce(t *testing.T) {
	samples := []int64{1, 2, 12, 49, 97, 100, 360, 720, 1001, 4096, 9973, 27720, 76576500 / 1000}
	for n := int64(1); n <= 300; n++ {
		samples = append(samples, n)
	}
	for _, n := range samples {
		want := bruteForce(n)
		if got := Count(n); got != len(want) {
			t.Errorf("Count(%d) = %d, want %d", n, got, len(want))
		}
		if diff := cmp.Diff(want, Of(n)); diff != "" {
			t.Errorf("Of(%d) (-want +got):\n%s", n, diff)
		}
	}
}

func TestCount_LargeTriangle(t *testing.T) {
	if got := Count(76576500); got != 576 {
		t.Fatalf("Count(76576500) = %d, want 576", got)
	}
}
