package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindStore, "store error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		wantOp   Op
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "with all args",
			args:     []any{Op("test.Op"), KindIO, "context", errors.New("boom")},
			wantOp:   "test.Op",
			wantKind: KindIO,
			wantMsg:  "test.Op: context: boom",
		},
		{
			name:     "context becomes the error",
			args:     []any{Op("test.Op"), KindInvalid, "just a message"},
			wantOp:   "test.Op",
			wantKind: KindInvalid,
			wantMsg:  "test.Op: just a message",
		},
		{
			name:     "with just error",
			args:     []any{errors.New("simple error")},
			wantKind: KindUnknown,
			wantMsg:  "simple error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestIs_AndGetKind(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", StoreWriteFailed("theme", errors.New("disk full")))

	if !Is(wrapped, KindStore) {
		t.Error("Is should see through fmt wrapping")
	}
	if Is(errors.New("plain"), KindStore) {
		t.Error("plain errors have no kind")
	}
	if Is(nil, KindStore) {
		t.Error("nil error has no kind")
	}
	if GetKind(wrapped) != KindStore {
		t.Errorf("GetKind = %v, want KindStore", GetKind(wrapped))
	}
	if GetKind(nil) != KindUnknown {
		t.Error("GetKind(nil) should be KindUnknown")
	}
}

func TestConstructors(t *testing.T) {
	underlying := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		kind Kind
		op   Op
	}{
		{"ConfigLoadFailed", ConfigLoadFailed("/cfg.yaml", underlying), KindConfig, "config.Load"},
		{"ConfigSaveFailed", ConfigSaveFailed("/cfg.yaml", underlying), KindConfig, "config.Save"},
		{"ConfigInvalid", ConfigInvalid("years.min must be below years.max"), KindInvalid, "config.Validate"},
		{"StoreOpenFailed", StoreOpenFailed("/prefs.db", underlying), KindStore, "store.Open"},
		{"StoreReadFailed", StoreReadFailed("theme", underlying), KindStore, "store.Get"},
		{"StoreWriteFailed", StoreWriteFailed("theme", underlying), KindStore, "store.Set"},
		{"UnknownBackend", UnknownBackend("redis"), KindInvalid, "store.New"},
		{"RemoveFailed", RemoveFailed("/tmp/prefs.json", underlying), KindIO, "clean.Remove"},
		{"InvalidThemeMode", InvalidThemeMode("sepia"), KindInvalid, "theme.ParseMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			var e *Error
			if !errors.As(tt.err, &e) || e.Op != tt.op {
				t.Errorf("op = %v, want %q", e, tt.op)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindConfig, middleErr)

	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}
	if GetKind(outerErr) != KindConfig {
		t.Error("GetKind should return outer error's kind")
	}
}
