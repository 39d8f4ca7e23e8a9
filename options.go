package dxcode

import "time"

// Clock returns the current time. It is consulted for the creation
// timestamp on encode and for expiry checks on decode.
type Clock func() time.Time

type codecConfig struct {
	compressor Compressor
	clock      Clock
	limits     Limits
}

type Option func(*codecConfig)

// WithCompressor sets the compression capability. A nil Compressor means
// the capability is unavailable: payloads are always stored raw and
// compressed envelopes fail to decode with ErrCompression.
func WithCompressor(c Compressor) Option {
	return func(cfg *codecConfig) { cfg.compressor = c }
}

func WithClock(c Clock) Option {
	return func(cfg *codecConfig) { cfg.clock = c }
}

func WithLimits(l Limits) Option {
	return func(cfg *codecConfig) { cfg.limits = l }
}

type encodeConfig struct {
	compress   bool
	hasTTL     bool
	ttlSeconds uint32
}

type EncodeOption func(*encodeConfig)

// WithCompression controls whether Encode may compress the payload.
// Defaults to true.
func WithCompression(v bool) EncodeOption {
	return func(c *encodeConfig) { c.compress = v }
}

// WithTTL adds a TTL block expiring seconds after encoding. Zero still
// writes the block but the data never expires. Without WithTTL no block is
// written.
func WithTTL(seconds uint32) EncodeOption {
	return func(c *encodeConfig) {
		c.hasTTL = true
		c.ttlSeconds = seconds
	}
}

type decodeConfig struct {
	checkTTL bool
}

type DecodeOption func(*decodeConfig)

// WithCheckTTL controls whether Decode rejects expired envelopes with
// ErrTTLExpired. Defaults to true.
func WithCheckTTL(v bool) DecodeOption {
	return func(c *decodeConfig) { c.checkTTL = v }
}
