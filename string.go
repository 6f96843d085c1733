package xdr

import "unicode/utf8"

// ============================================================================
// XDR String Decoders
// ============================================================================

// DecodeString decodes an XDR variable-length string.
//
// Per RFC 4506 Section 4.11 (String):
// Strings use the same encoding as variable-length opaque data but the
// payload is interpreted as UTF-8 text.
// Format: [length:uint32][data:length bytes][padding:0-3 bytes]
//
// Decoding fails with ErrStringFormat when the buffer is shorter than the
// declared length plus its alignment padding, or when the payload is not
// valid UTF-8. Total bytes consumed on success are 4 + length + padding.
func DecodeString(buf []byte) (string, int, error) {
	length, n, err := DecodeUint32(buf)
	if err != nil {
		return "", 0, err
	}
	total := uint64(n) + uint64(length) + uint64(pad(length))
	if uint64(len(buf)) < total {
		return "", 0, ErrStringFormat
	}
	data := buf[n : uint64(n)+uint64(length)]
	if !utf8.Valid(data) {
		return "", 0, ErrStringFormat
	}
	return string(data), int(total), nil
}

// DecodeVarString decodes an XDR string bounded by maxSize.
//
// The length prefix is validated against maxSize first, failing with
// ErrVarArrayWrongSize, then the standard string decode runs over the same
// buffer (re-reading the prefix). The declared maximum is an upper bound;
// any length at or below it is accepted.
func DecodeVarString(maxSize uint32, buf []byte) (string, int, error) {
	length, _, err := DecodeUint32(buf)
	if err != nil {
		return "", 0, err
	}
	if length > maxSize {
		return "", 0, ErrVarArrayWrongSize
	}
	return DecodeString(buf)
}
