package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrConfig, "config error"},
		{ErrShm, "shared memory error"},
		{ErrChild, "child error"},
		{ErrTable, "syscall table error"},
		{ErrSyscall, "syscall error"},
		{ErrSignal, "signal error"},
		{ErrInternal, "internal error"},
		{ErrorKind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFuzzError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FuzzError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "<nil>",
		},
		{
			name: "full error",
			err: &FuzzError{
				Op:     "spawn",
				Child:  "child 3",
				Kind:   ErrChild,
				Detail: "fork failed",
				Err:    fmt.Errorf("resource temporarily unavailable"),
			},
			expected: "child 3: spawn: fork failed: resource temporarily unavailable",
		},
		{
			name: "without child",
			err: &FuzzError{
				Op:     "map",
				Kind:   ErrShm,
				Detail: "mmap failed",
			},
			expected: "map: mmap failed",
		},
		{
			name: "kind only",
			err: &FuzzError{
				Kind: ErrConfig,
			},
			expected: "config error",
		},
		{
			name: "with underlying error",
			err: &FuzzError{
				Op:   "invoke",
				Kind: ErrSyscall,
				Err:  fmt.Errorf("bad address"),
			},
			expected: "invoke: syscall error: bad address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("FuzzError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFuzzError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &FuzzError{
		Op:   "test",
		Kind: ErrInternal,
		Err:  underlying,
	}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}

	// Test nil error
	var nilErr *FuzzError
	if got := nilErr.Unwrap(); got != nil {
		t.Errorf("nil.Unwrap() = %v, want nil", got)
	}
}

func TestFuzzError_Is(t *testing.T) {
	err1 := &FuzzError{Kind: ErrChild, Op: "test1"}
	err2 := &FuzzError{Kind: ErrChild, Op: "test2"}
	err3 := &FuzzError{Kind: ErrConfig, Op: "test3"}

	// Same kind should match
	if !err1.Is(err2) {
		t.Error("err1.Is(err2) should be true (same kind)")
	}

	// Different kind should not match
	if err1.Is(err3) {
		t.Error("err1.Is(err3) should be false (different kind)")
	}

	// Non-FuzzError should not match
	if err1.Is(fmt.Errorf("some error")) {
		t.Error("err1.Is(fmt.Errorf(...)) should be false")
	}

	// Nil handling
	var nilErr *FuzzError
	if !nilErr.Is(nil) {
		t.Error("nil.Is(nil) should be true")
	}
}

func TestNew(t *testing.T) {
	err := New(ErrConfig, "validate", "children must be at least 1")

	if err.Kind != ErrConfig {
		t.Errorf("Kind = %v, want %v", err.Kind, ErrConfig)
	}
	if err.Op != "validate" {
		t.Errorf("Op = %q, want %q", err.Op, "validate")
	}
	if err.Detail != "children must be at least 1" {
		t.Errorf("Detail = %q, want %q", err.Detail, "children must be at least 1")
	}
}

func TestWrap(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := Wrap(underlying, ErrSyscall, "open file")

	if err.Err != underlying {
		t.Error("Wrapped error should preserve underlying error")
	}
	if err.Kind != ErrSyscall {
		t.Errorf("Kind = %v, want %v", err.Kind, ErrSyscall)
	}
	if err.Op != "open file" {
		t.Errorf("Op = %q, want %q", err.Op, "open file")
	}
}

func TestWrapWithChild(t *testing.T) {
	underlying := fmt.Errorf("not found")
	err := WrapWithChild(underlying, ErrChild, "reap", "child 7")

	if err.Child != "child 7" {
		t.Errorf("Child = %q, want %q", err.Child, "child 7")
	}
}

func TestWrapWithDetail(t *testing.T) {
	underlying := fmt.Errorf("syscall failed")
	err := WrapWithDetail(underlying, ErrTable, "select", "no active entries")

	if err.Detail != "no active entries" {
		t.Errorf("Detail = %q, want %q", err.Detail, "no active entries")
	}
}

func TestIsKind(t *testing.T) {
	err := &FuzzError{Kind: ErrChild}
	wrapped := fmt.Errorf("wrapped: %w", err)

	if !IsKind(err, ErrChild) {
		t.Error("IsKind(err, ErrChild) should be true")
	}
	if !IsKind(wrapped, ErrChild) {
		t.Error("IsKind(wrapped, ErrChild) should be true")
	}
	if IsKind(err, ErrConfig) {
		t.Error("IsKind(err, ErrConfig) should be false")
	}
	if IsKind(fmt.Errorf("plain error"), ErrChild) {
		t.Error("IsKind(plain error, ErrChild) should be false")
	}
}

func TestGetKind(t *testing.T) {
	err := &FuzzError{Kind: ErrShm}
	wrapped := fmt.Errorf("wrapped: %w", err)

	kind, ok := GetKind(err)
	if !ok || kind != ErrShm {
		t.Errorf("GetKind(err) = (%v, %v), want (%v, true)", kind, ok, ErrShm)
	}

	kind, ok = GetKind(wrapped)
	if !ok || kind != ErrShm {
		t.Errorf("GetKind(wrapped) = (%v, %v), want (%v, true)", kind, ok, ErrShm)
	}

	_, ok = GetKind(fmt.Errorf("plain error"))
	if ok {
		t.Error("GetKind(plain error) should return false")
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *FuzzError
		kind ErrorKind
	}{
		{"ErrNoVictimPath", ErrNoVictimPath, ErrConfig},
		{"ErrInvalidChildren", ErrInvalidChildren, ErrConfig},
		{"ErrShmMap", ErrShmMap, ErrShm},
		{"ErrShmCorrupt", ErrShmCorrupt, ErrShm},
		{"ErrChildSpawn", ErrChildSpawn, ErrChild},
		{"ErrChildStuck", ErrChildStuck, ErrChild},
		{"ErrTableEmpty", ErrTableEmpty, ErrTable},
		{"ErrUnsupportedFamily", ErrUnsupportedFamily, ErrSyscall},
		{"ErrSignalRecovery", ErrSignalRecovery, ErrSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("%s.Kind = %v, want %v", tt.name, tt.err.Kind, tt.kind)
			}
			// Ensure Is() works with sentinel errors
			wrapped := Wrap(fmt.Errorf("underlying"), tt.kind, "test")
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) should be true", tt.name)
			}
		})
	}
}

func TestErrorChain(t *testing.T) {
	// Test that error chains work correctly with errors.Is and errors.As
	underlying := fmt.Errorf("fork failed")
	err1 := Wrap(underlying, ErrChild, "spawn worker")
	err2 := fmt.Errorf("supervisor startup failed: %w", err1)

	// errors.Is should find the FuzzError in the chain
	if !errors.Is(err2, ErrChildSpawn) {
		t.Error("errors.Is should find ErrChildSpawn in chain")
	}

	// errors.As should extract the FuzzError
	var ferr *FuzzError
	if !errors.As(err2, &ferr) {
		t.Error("errors.As should find FuzzError in chain")
	}
	if ferr.Op != "spawn worker" {
		t.Errorf("ferr.Op = %q, want %q", ferr.Op, "spawn worker")
	}

	// Unwrap should work through the chain
	if errors.Unwrap(err1) != underlying {
		t.Error("Unwrap should return underlying error")
	}
}
