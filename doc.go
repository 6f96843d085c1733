// Package xdr provides decoding of XDR (External Data Representation) wire
// data per RFC 4506.
//
// XDR is the standard data serialization format used by Sun RPC protocols
// including NFS and NLM. This package is the decode direction only: every
// decoder is a pure function of an immutable byte slice that returns the
// decoded value together with the exact number of bytes consumed, so callers
// can decode a sequence of values back-to-back from one buffer by advancing
// their own offset between calls.
//
// Key characteristics of XDR:
//   - Big-endian byte order for all multi-byte integers
//   - 4-byte alignment for all data types
//   - Variable-length data is preceded by a 4-byte length
//   - Strings and opaque data are padded to 4-byte boundaries
//
// Aggregate types (structs, enums, discriminated unions) implement the
// Decodable interface, typically via generated code that composes the
// primitive, opaque, string and array decoders in this package.
//
// This package contains only generic utilities with no dependencies on any
// protocol types, logging, or configuration.
//
// Reference: RFC 4506 - XDR: External Data Representation Standard
// https://tools.ietf.org/html/rfc4506
package xdr
