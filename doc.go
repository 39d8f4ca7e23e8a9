// Package dxcode implements DX, a text-safe binary encoding.
//
// DX wraps an arbitrary byte payload in a small self-describing envelope and
// renders it as printable text that starts with the signature "dx". It is
// meant for pasting binary data through text-only channels while catching
// typos and truncation.
//
// # Format Overview
//
// The envelope is laid out as:
//   - a flags byte (compressed, deflate, has-TTL)
//   - a big-endian CRC16-CCITT of the original payload
//   - an optional 8-byte TTL block: creation time and lifetime in seconds
//   - the payload, raw or as a 2-byte original size followed by a DEFLATE stream
//
// The envelope bytes are then split into 6-bit values, XORed with [Magic]
// and mapped through [Alphabet], four symbols per three bytes, with '='
// padding the final group.
//
// # Basic Usage
//
//	s, err := dxcode.Encode([]byte("Hello"))
//	if err != nil {
//		return err
//	}
//	b, err := dxcode.Decode(s)
//
// Expiring data:
//
//	s, err := dxcode.Encode(token, dxcode.WithTTL(3600))
//	...
//	b, err := dxcode.Decode(s) // ErrTTLExpired after one hour
//
// A [Codec] built with [New] lets callers swap the compressor, the clock and
// the allocation [Limits]; the package-level functions use a default Codec.
//
// # Security Considerations
//
// DX is not encryption and the checksum does not protect against deliberate
// tampering. Decoding enforces [Limits] on input size, and decompression is
// bounded by the size stored in the envelope.
package dxcode
