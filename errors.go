package xdr

import "errors"

// ============================================================================
// Decode Error Taxonomy
// ============================================================================
//
// One sentinel per failure class. Decoders return these directly (no
// wrapping, no partial values) so callers can match with errors.Is. A failed
// decode always reports 0 bytes consumed.

var (
	// ErrBoolFormat indicates a boolean wire value other than 0 or 1, or a
	// buffer shorter than the 4 bytes a boolean occupies
	ErrBoolFormat = errors.New("xdr: invalid boolean")
	// ErrIntFormat indicates a buffer shorter than the 4 bytes an int32 occupies
	ErrIntFormat = errors.New("xdr: invalid integer")
	// ErrUintFormat indicates a buffer shorter than the 4 bytes a uint32 occupies
	ErrUintFormat = errors.New("xdr: invalid unsigned integer")
	// ErrHyperFormat indicates a buffer shorter than the 8 bytes an int64 occupies
	ErrHyperFormat = errors.New("xdr: invalid hyper")
	// ErrUhyperFormat indicates a buffer shorter than the 8 bytes a uint64 occupies
	ErrUhyperFormat = errors.New("xdr: invalid unsigned hyper")
	// ErrFloatFormat indicates a buffer shorter than the 4 bytes a float occupies
	ErrFloatFormat = errors.New("xdr: invalid float")
	// ErrDoubleFormat indicates a buffer shorter than the 8 bytes a double occupies
	ErrDoubleFormat = errors.New("xdr: invalid double")
	// ErrStringFormat indicates insufficient bytes for a string's declared
	// length (including its alignment padding), or a payload that is not
	// valid UTF-8
	ErrStringFormat = errors.New("xdr: invalid string")
	// ErrBadArraySize indicates a declared variable length or count that
	// exceeds the caller's maximum, or insufficient bytes for a fixed-size
	// opaque or array
	ErrBadArraySize = errors.New("xdr: bad array size")
	// ErrVarArrayWrongSize indicates a string length prefix exceeding the
	// bounded string's declared maximum
	ErrVarArrayWrongSize = errors.New("xdr: variable array wrong size")
	// ErrInvalidEnum indicates an enum or union discriminant outside the
	// declared set
	ErrInvalidEnum = errors.New("xdr: invalid enum value")
)
