package xdr

// ============================================================================
// XDR Composite Decode Contract
// ============================================================================

// Decodable is implemented by types that can decode themselves from XDR
// format. Generated code for structs, enums and discriminated unions
// implements this interface by composing the decoders in this package:
// struct fields decode in declared order with their counts summed, and the
// first field error aborts the remaining fields.
type Decodable interface {
	// Decode parses the value from the front of buf into the receiver and
	// returns the number of bytes consumed, or a decode error with 0
	// consumed.
	Decode(buf []byte) (int, error)
}

// DecodeValue adapts a Decodable composite type to a DecodeFunc, so
// composites nest inside arrays the same way primitives do.
//
// Example:
//
//	entries, n, err := xdr.DecodeVarArray(64, buf, xdr.DecodeValue[Entry])
func DecodeValue[T any, P interface {
	*T
	Decodable
}](buf []byte) (T, int, error) {
	var v T
	n, err := P(&v).Decode(buf)
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return v, n, nil
}

// DecodeEnum decodes a 4-byte XDR enum and validates it against the
// declared discriminant set.
//
// Per RFC 4506 Section 4.3 (Enumeration):
// Enums are encoded as signed 32-bit integers restricted to the declared
// values. A wire value outside members fails with ErrInvalidEnum; a buffer
// shorter than 4 bytes fails with the integer format error from the
// discriminant read.
//
// Example:
//
//	v, n, err := xdr.DecodeEnum(buf, 0, 1, 2)
func DecodeEnum(buf []byte, members ...int32) (int32, int, error) {
	v, n, err := DecodeInt32(buf)
	if err != nil {
		return 0, 0, err
	}
	for _, m := range members {
		if v == m {
			return v, n, nil
		}
	}
	return 0, 0, ErrInvalidEnum
}

// DecodeUnionDiscriminant reads the uint32 discriminant of an XDR union.
// This is an alias for DecodeUint32 that makes union decode code
// self-documenting.
//
// Per RFC 4506 Section 4.15 (Discriminated Unions):
// The discriminant is always decoded as a uint32 before the union arm data.
// Generated union code reads the discriminant, selects the matching arm,
// and decodes only that arm's payload; an unmatched discriminant fails with
// ErrInvalidEnum before any payload bytes are read.
func DecodeUnionDiscriminant(buf []byte) (uint32, int, error) {
	return DecodeUint32(buf)
}
