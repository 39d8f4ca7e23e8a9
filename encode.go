package dxcode

import "fmt"

// Encode wraps data in a DX envelope and returns its text form.
//
// The envelope carries the CRC16 of data, an optional TTL block and the
// payload, compressed when that is allowed and worthwhile. By default:
//   - compression is allowed (see WithCompression)
//   - no TTL block is written (see WithTTL)
//
// Encode returns ErrOutOfMemory if data exceeds Limits.MaxPayloadLen and
// ErrCompression if the compressor fails.
func (c *Codec) Encode(data []byte, opts ...EncodeOption) (string, error) {
	env, err := c.buildEnvelope(data, opts)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(Prefix)+packedLen(len(env)))
	copy(out, Prefix)
	pack(out[len(Prefix):], env)
	return string(out), nil
}

// EncodeTo is like Encode but writes the text into dst and returns the
// number of bytes written. It returns ErrBufferTooSmall, and writes nothing,
// if dst cannot hold the result; RequiredCapacity gives a size that always
// fits.
func (c *Codec) EncodeTo(dst, data []byte, opts ...EncodeOption) (int, error) {
	env, err := c.buildEnvelope(data, opts)
	if err != nil {
		return 0, err
	}
	n := len(Prefix) + packedLen(len(env))
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, n, len(dst))
	}
	copy(dst, Prefix)
	pack(dst[len(Prefix):n], env)
	return n, nil
}

func (c *Codec) buildEnvelope(data []byte, opts []EncodeOption) ([]byte, error) {
	cfg := encodeConfig{compress: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(data) > c.limits.MaxPayloadLen {
		return nil, fmt.Errorf("%w: payload length %d exceeds %d", ErrOutOfMemory, len(data), c.limits.MaxPayloadLen)
	}

	flags, payload, err := compressPayload(c.compressor, cfg.compress, data)
	if err != nil {
		return nil, err
	}
	h := envelopeHeader{
		Flags:    flags,
		Checksum: Checksum(data),
	}
	if cfg.hasTTL {
		h.Flags |= FlagHasTTL
		h.CreatedAt = uint32(c.clock().Unix())
		h.TTLSeconds = cfg.ttlSeconds
	}

	env := make([]byte, h.size()+len(payload))
	n := writeHeader(env, h)
	copy(env[n:], payload)
	return env, nil
}
