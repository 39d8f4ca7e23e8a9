package dxcode

import "time"

// Codec encodes and decodes DX strings. A Codec is immutable and safe for
// concurrent use.
type Codec struct {
	compressor Compressor
	clock      Clock
	limits     Limits
}

// New returns a Codec using DefaultCompressor, time.Now and the default
// Limits unless overridden by opts.
func New(opts ...Option) *Codec {
	cfg := codecConfig{
		compressor: DefaultCompressor,
		clock:      time.Now,
		limits:     defaultLimits(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	return &Codec{
		compressor: cfg.compressor,
		clock:      cfg.clock,
		limits:     cfg.limits.withDefaults(),
	}
}

var defaultCodec = New()

func Encode(data []byte, opts ...EncodeOption) (string, error) {
	return defaultCodec.Encode(data, opts...)
}

func EncodeString(s string, opts ...EncodeOption) (string, error) {
	return defaultCodec.Encode([]byte(s), opts...)
}

func EncodeTo(dst, data []byte, opts ...EncodeOption) (int, error) {
	return defaultCodec.EncodeTo(dst, data, opts...)
}

func Decode(s string, opts ...DecodeOption) ([]byte, error) {
	return defaultCodec.Decode(s, opts...)
}

func DecodeString(s string, opts ...DecodeOption) (string, error) {
	b, err := defaultCodec.Decode(s, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeTo(dst []byte, s string, opts ...DecodeOption) (int, error) {
	return defaultCodec.DecodeTo(dst, s, opts...)
}

func Verify(s string) (bool, error) { return defaultCodec.Verify(s) }

func HasTTL(s string) (bool, error) { return defaultCodec.HasTTL(s) }

func TTL(s string) (*TTLInfo, error) { return defaultCodec.TTL(s) }

func IsExpired(s string) (bool, error) { return defaultCodec.IsExpired(s) }

func IsCompressed(s string) (bool, error) { return defaultCodec.IsCompressed(s) }

func GetChecksumInfo(s string) (ChecksumInfo, error) { return defaultCodec.GetChecksumInfo(s) }

func Inspect(s string) (*Envelope, error) { return defaultCodec.Inspect(s) }

func DecodedLen(s string) (int, error) { return defaultCodec.DecodedLen(s) }
