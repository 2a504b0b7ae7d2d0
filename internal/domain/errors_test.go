package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "yamlsuite.load",
		Kind: KindInvalidConfig,
		Path: "suites/euler.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "runstore.write", Kind: KindExecution, Path: "runs/x.json", Err: errors.New("disk full")}
	want := "runstore.write: execution (path=runs/x.json): disk full"
	if err.Error() != want {
		t.Fatalf("unexpected message:\n got: %s\nwant: %s", err.Error(), want)
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindNotFound}
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindExecution) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected IsKind=false for plain errors")
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("triangular.find", "threshold must be >= 0, got %d", -1)
	if !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected invalid_argument kind, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected errors.Is(ErrInvalidArgument)")
	}
	if !strings.Contains(err.Error(), "-1") {
		t.Fatalf("expected message to mention the value, got %q", err.Error())
	}
}

func TestUnsupported(t *testing.T) {
	err := Unsupported("primes.new", "unknown strategy %q", "wheel")
	if !IsKind(err, KindUnsupported) {
		t.Fatalf("expected unsupported kind, got %v", err)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected errors.Is(ErrUnsupported)")
	}
}
