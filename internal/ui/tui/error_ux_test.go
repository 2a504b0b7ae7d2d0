package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/eulerseq/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"cancelled", fmt.Errorf("solve: %w", context.Canceled), "Cancelled"},
		{
			"workspace not found",
			&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Workspace not found",
		},
		{
			"generic not found",
			&domain.OpError{Op: "yamlsuite.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Not found",
		},
		{
			"invalid argument",
			domain.InvalidArgument("solve.validate", "n must be >= 1, got %d", 0),
			"Invalid input: n must be >= 1, got 0",
		},
		{
			"unsupported",
			domain.Unsupported("primes.strategy", "unknown sieve strategy %q", "wheel"),
			`Unsupported: unknown sieve strategy "wheel"`,
		},
		{
			"invalid yaml with line",
			&domain.OpError{Op: "yamlsuite.load", Kind: domain.KindInvalidConfig, Path: "/ws/suites/euler.yaml", Err: errors.New("yaml: line 7: mapping values are not allowed")},
			"Invalid YAML at euler.yaml line 7",
		},
		{
			"invalid config",
			&domain.OpError{Op: "workspacefinder.config", Kind: domain.KindInvalidConfig, Err: domain.ErrInvalidConfig},
			"Invalid config",
		},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Errorf("userMessage() = %q, want %q", got, c.want)
			}
		})
	}
}
