package xdr

import "math"

// ============================================================================
// XDR Opaque Data Decoders
// ============================================================================

// pad returns the number of zero bytes appended after a payload of n bytes
// to align the next item to a 4-byte boundary.
//
// XDR Alignment Rule:
// All XDR data types are aligned to 4-byte boundaries. Variable-length data
// is padded with 0-3 zero bytes to achieve this alignment.
// Example: n=5 → 3, n=8 → 0.
func pad(n uint32) uint32 {
	return (4 - n%4) % 4
}

// DecodeFixedOpaque decodes XDR fixed-length opaque data.
//
// Per RFC 4506 Section 4.9 (Fixed-Length Opaque Data):
// Format: [data:size bytes][padding:0-3 bytes]
// The length is fixed by the schema and does not appear on the wire.
//
// The buffer must contain the full padded extent (size rounded up to a
// multiple of 4) or decoding fails with ErrBadArraySize. Padding bytes are
// consumed but not validated or returned. A size of 0 is a valid no-op read
// consuming 0 bytes.
//
// The returned slice is an owned copy with no aliasing into buf.
func DecodeFixedOpaque(size uint32, buf []byte) ([]byte, int, error) {
	padded := uint64(size) + uint64(pad(size))
	if uint64(len(buf)) < padded {
		return nil, 0, ErrBadArraySize
	}
	data := make([]byte, size)
	copy(data, buf[:size])
	return data, int(padded), nil
}

// DecodeVarOpaque decodes XDR variable-length opaque data bounded by
// maxSize.
//
// Per RFC 4506 Section 4.10 (Variable-Length Opaque Data):
// Format: [length:uint32][data:length bytes][padding:0-3 bytes]
//
// The declared maximum is an upper bound, not an exact length: a length
// prefix exceeding maxSize fails with ErrBadArraySize before any payload
// bytes are read. Total bytes consumed on success are
// 4 + length + padding.
func DecodeVarOpaque(maxSize uint32, buf []byte) ([]byte, int, error) {
	length, n, err := DecodeUint32(buf)
	if err != nil {
		return nil, 0, err
	}
	if length > maxSize {
		return nil, 0, ErrBadArraySize
	}
	data, read, err := DecodeFixedOpaque(length, buf[n:])
	if err != nil {
		return nil, 0, err
	}
	return data, n + read, nil
}

// DecodeOpaque decodes XDR variable-length opaque data with no declared
// maximum, as used by open-ended opaque<> fields.
func DecodeOpaque(buf []byte) ([]byte, int, error) {
	return DecodeVarOpaque(math.MaxUint32, buf)
}
