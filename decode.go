package dxcode

import (
	"fmt"
	"time"
)

// Decode parses a DX string and returns the original payload.
//
// The decoding process:
//  1. Checks the dx prefix and the encoded length limit
//  2. Unpacks the symbol groups into the envelope
//  3. Parses and validates the flags and the optional TTL block
//  4. Rejects expired envelopes (before integrity is checked)
//  5. Decompresses the payload if needed
//  6. Verifies the CRC16 of the recovered payload
//
// Use WithCheckTTL(false) to decode expired data.
//
// Decode returns ErrInvalidInput for an empty string, ErrInvalidPrefix,
// ErrInvalidLength or ErrInvalidCharacter for malformed text,
// ErrInvalidHeader or ErrInvalidFlags for a malformed envelope,
// ErrTTLExpired, ErrCompression, or ErrChecksumMismatch.
func (c *Codec) Decode(s string, opts ...DecodeOption) ([]byte, error) {
	cfg := decodeConfig{checkTTL: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	env, _, err := c.unwrap(s, -1)
	if err != nil {
		return nil, err
	}
	h, err := readHeader(env)
	if err != nil {
		return nil, err
	}
	if cfg.checkTTL && h.expired(c.clock()) {
		return nil, fmt.Errorf("%w: created %s, expired %s", ErrTTLExpired,
			formatUnix(int64(h.CreatedAt)), formatUnix(h.expiresAt()))
	}
	payload, err := decompressPayload(c.compressor, h.Flags, env[h.size():])
	if err != nil {
		return nil, err
	}
	if sum := Checksum(payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%04X, computed 0x%04X", ErrChecksumMismatch, h.Checksum, sum)
	}
	return payload, nil
}

// DecodeTo is like Decode but copies the payload into dst and returns its
// length. It returns ErrBufferTooSmall, and copies nothing, if dst is
// shorter than the payload; DecodedLen reports the exact size needed.
func (c *Codec) DecodeTo(dst []byte, s string, opts ...DecodeOption) (int, error) {
	payload, err := c.Decode(s, opts...)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(payload) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(payload), len(dst))
	}
	return copy(dst, payload), nil
}

// unwrap strips the prefix and unpacks the envelope. A non-negative limit
// unpacks only the first limit bytes. total is the full envelope length.
func (c *Codec) unwrap(s string, limit int) (env []byte, total int, err error) {
	body, err := splitPrefix(s, c.limits)
	if err != nil {
		return nil, 0, err
	}
	return unpack(body, limit)
}

func formatUnix(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
