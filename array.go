package xdr

import "math"

// ============================================================================
// XDR Array Decoders
// ============================================================================
//
// Arrays decode element by element through a DecodeFunc, so the element type
// can be a primitive (pass the decoder directly) or any Decodable composite
// (pass DecodeValue[T]). The first element error aborts decoding; no partial
// array is returned.

// DecodeFunc decodes one value of type T from the front of buf, returning
// the value and the bytes consumed. All primitive decoders in this package
// have this shape.
type DecodeFunc[T any] func(buf []byte) (T, int, error)

// DecodeFixedArray decodes an XDR fixed-length array of count elements.
//
// Per RFC 4506 Section 4.12 (Fixed-Length Array):
// Elements are encoded back to back in declared order; the count is fixed
// by the schema and does not appear on the wire.
//
// Consumed bytes are the sum of the per-element counts. A count of 0 is a
// valid no-op read consuming 0 bytes.
//
// Example:
//
//	vals, n, err := xdr.DecodeFixedArray(3, buf, xdr.DecodeUint32)
func DecodeFixedArray[T any](count uint32, buf []byte, elem DecodeFunc[T]) ([]T, int, error) {
	var result []T
	read := 0
	for i := uint32(0); i < count; i++ {
		v, n, err := elem(buf[read:])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, v)
		read += n
	}
	return result, read, nil
}

// DecodeVarArray decodes an XDR variable-length array bounded by maxCount.
//
// Per RFC 4506 Section 4.13 (Variable-Length Array):
// Format: [count:uint32][element 0]...[element count-1]
//
// A count prefix exceeding maxCount fails with ErrBadArraySize before any
// element is decoded. Consumed bytes are 4 plus the sum of the per-element
// counts.
//
// Example:
//
//	vals, n, err := xdr.DecodeVarArray(16, buf, xdr.DecodeValue[Entry])
func DecodeVarArray[T any](maxCount uint32, buf []byte, elem DecodeFunc[T]) ([]T, int, error) {
	count, n, err := DecodeUint32(buf)
	if err != nil {
		return nil, 0, err
	}
	if count > maxCount {
		return nil, 0, ErrBadArraySize
	}
	result, read, err := DecodeFixedArray(count, buf[n:], elem)
	if err != nil {
		return nil, 0, err
	}
	return result, n + read, nil
}

// DecodeArray decodes an XDR variable-length array with no declared
// maximum, as used by open-ended T<> sequence fields. The count prefix is
// not bounds-checked; a hostile count still fails fast on the first element
// the buffer cannot satisfy.
func DecodeArray[T any](buf []byte, elem DecodeFunc[T]) ([]T, int, error) {
	return DecodeVarArray(math.MaxUint32, buf, elem)
}
