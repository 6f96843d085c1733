package xdr

import (
	"encoding/binary"
	"math"
)

// ============================================================================
// XDR Primitive Decoders - Wire Format → Go Types
// ============================================================================
//
// Every decoder takes an immutable byte slice and returns the decoded value
// together with the exact number of bytes consumed from the front of the
// slice. On failure the consumed count is 0 and the error identifies the
// failing type. Decoders never read past the bytes they report consumed.

// Void is the XDR zero-width type. It occupies no bytes on the wire and
// exists so void union arms and empty structs satisfy the Decodable
// contract.
type Void struct{}

// Decode implements Decodable. It always succeeds and consumes 0 bytes.
func (*Void) Decode(buf []byte) (int, error) {
	return 0, nil
}

// DecodeVoid decodes the XDR void value. It always succeeds and consumes
// 0 bytes, regardless of buffer contents.
func DecodeVoid(buf []byte) (Void, int, error) {
	return Void{}, 0, nil
}

// DecodeBool decodes an XDR boolean value.
//
// Per RFC 4506 Section 4.4 (Boolean):
// Booleans are encoded as a 4-byte big-endian integer restricted to 0
// (false) and 1 (true).
//
// Any other wire value, or a buffer shorter than 4 bytes, fails with
// ErrBoolFormat.
//
// Returns:
//   - bool: Decoded value
//   - int: Bytes consumed (4 on success)
//   - error: ErrBoolFormat on failure
func DecodeBool(buf []byte) (bool, int, error) {
	v, n, err := DecodeInt32(buf)
	if err != nil {
		return false, 0, ErrBoolFormat
	}
	switch v {
	case 1:
		return true, n, nil
	case 0:
		return false, n, nil
	default:
		return false, 0, ErrBoolFormat
	}
}

// DecodeInt32 decodes a 32-bit signed integer from XDR format.
//
// Per RFC 4506 Section 4.1 (Integer):
// Signed 32-bit integers are encoded in big-endian byte order using
// two's complement representation.
//
// Returns:
//   - int32: Decoded value
//   - int: Bytes consumed (4 on success)
//   - error: ErrIntFormat if fewer than 4 bytes are available
func DecodeInt32(buf []byte) (int32, int, error) {
	if len(buf) < 4 {
		return 0, 0, ErrIntFormat
	}
	return int32(binary.BigEndian.Uint32(buf[:4])), 4, nil
}

// DecodeUint32 decodes a 32-bit unsigned integer from XDR format.
//
// Per RFC 4506 Section 4.2 (Unsigned Integer):
// Unsigned 32-bit integers are encoded in big-endian byte order.
//
// Returns:
//   - uint32: Decoded value
//   - int: Bytes consumed (4 on success)
//   - error: ErrUintFormat if fewer than 4 bytes are available
func DecodeUint32(buf []byte) (uint32, int, error) {
	if len(buf) < 4 {
		return 0, 0, ErrUintFormat
	}
	return binary.BigEndian.Uint32(buf[:4]), 4, nil
}

// DecodeInt64 decodes a 64-bit signed integer (XDR hyper) from XDR format.
//
// Per RFC 4506 Section 4.5 (Hyper Integer):
// Signed 64-bit integers are encoded in big-endian byte order using
// two's complement representation.
//
// Returns:
//   - int64: Decoded value
//   - int: Bytes consumed (8 on success)
//   - error: ErrHyperFormat if fewer than 8 bytes are available
func DecodeInt64(buf []byte) (int64, int, error) {
	if len(buf) < 8 {
		return 0, 0, ErrHyperFormat
	}
	return int64(binary.BigEndian.Uint64(buf[:8])), 8, nil
}

// DecodeUint64 decodes a 64-bit unsigned integer (XDR unsigned hyper) from
// XDR format.
//
// Per RFC 4506 Section 4.5 (Hyper Integer):
// Unsigned 64-bit integers are encoded in big-endian byte order.
//
// Returns:
//   - uint64: Decoded value
//   - int: Bytes consumed (8 on success)
//   - error: ErrUhyperFormat if fewer than 8 bytes are available
func DecodeUint64(buf []byte) (uint64, int, error) {
	if len(buf) < 8 {
		return 0, 0, ErrUhyperFormat
	}
	return binary.BigEndian.Uint64(buf[:8]), 8, nil
}

// DecodeFloat32 decodes a single-precision float from XDR format.
//
// Per RFC 4506 Section 4.6 (Floating-Point):
// Floats are encoded as their IEEE-754 bit pattern in big-endian byte order.
//
// Returns:
//   - float32: Decoded value
//   - int: Bytes consumed (4 on success)
//   - error: ErrFloatFormat if fewer than 4 bytes are available
func DecodeFloat32(buf []byte) (float32, int, error) {
	if len(buf) < 4 {
		return 0, 0, ErrFloatFormat
	}
	return math.Float32frombits(binary.BigEndian.Uint32(buf[:4])), 4, nil
}

// DecodeFloat64 decodes a double-precision float from XDR format.
//
// Per RFC 4506 Section 4.7 (Double-Precision Floating-Point):
// Doubles are encoded as their IEEE-754 bit pattern in big-endian byte order.
//
// Returns:
//   - float64: Decoded value
//   - int: Bytes consumed (8 on success)
//   - error: ErrDoubleFormat if fewer than 8 bytes are available
func DecodeFloat64(buf []byte) (float64, int, error) {
	if len(buf) < 8 {
		return 0, 0, ErrDoubleFormat
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:8])), 8, nil
}
