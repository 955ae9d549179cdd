// Package errors provides structured error types for sustaindash.
// These errors carry the operation that failed and a category, so callers can
// decide whether a failure is fatal (bad config) or degradable (preference store).
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindIO
	KindConfig
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindStore:
		return "store error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for sustaindash.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Store errors
func StoreOpenFailed(path string, err error) error {
	return E(Op("store.Open"), KindStore, fmt.Sprintf("failed to open preference store %s", path), err)
}

func StoreReadFailed(key string, err error) error {
	return E(Op("store.Get"), KindStore, fmt.Sprintf("failed to read key %q", key), err)
}

func StoreWriteFailed(key string, err error) error {
	return E(Op("store.Set"), KindStore, fmt.Sprintf("failed to write key %q", key), err)
}

func UnknownBackend(name string) error {
	return E(Op("store.New"), KindInvalid, fmt.Sprintf("unknown store backend %q", name))
}

// RemoveFailed reports a file that clean could not delete.
func RemoveFailed(path string, err error) error {
	return E(Op("clean.Remove"), KindIO, fmt.Sprintf("failed to remove %s", path), err)
}

// Theme errors
func InvalidThemeMode(value string) error {
	return E(Op("theme.ParseMode"), KindInvalid, fmt.Sprintf("theme mode must be light or dark, got %q", value))
}
