package dxcode

import (
	"errors"
	"fmt"
)

// The queries below decode only as much of the envelope as they need.
// Each one validates the prefix, the full symbol body and the flags byte.

// HasTTL reports whether the envelope carries a TTL block.
func (c *Codec) HasTTL(s string) (bool, error) {
	f, err := c.peekFlags(s)
	if err != nil {
		return false, err
	}
	return f.HasTTL(), nil
}

// IsCompressed reports whether the payload is stored compressed.
func (c *Codec) IsCompressed(s string) (bool, error) {
	f, err := c.peekFlags(s)
	if err != nil {
		return false, err
	}
	return f.Compressed(), nil
}

func (c *Codec) peekFlags(s string) (Flags, error) {
	env, _, err := c.unwrap(s, headerSize)
	if err != nil {
		return 0, err
	}
	return readFlags(env)
}

// TTL returns the TTL block of the envelope, or nil if it has none.
func (c *Codec) TTL(s string) (*TTLInfo, error) {
	env, _, err := c.unwrap(s, headerSize+ttlBlockSize)
	if err != nil {
		return nil, err
	}
	h, err := readHeader(env)
	if err != nil {
		return nil, err
	}
	if !h.Flags.HasTTL() {
		return nil, nil
	}
	info := h.ttlInfo(c.clock())
	return &info, nil
}

// IsExpired reports whether the envelope's TTL has elapsed. Envelopes
// without a TTL block, or with a zero TTL, never expire.
func (c *Codec) IsExpired(s string) (bool, error) {
	info, err := c.TTL(s)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, nil
	}
	return info.Expired, nil
}

// Inspect parses the whole envelope and recovers the payload without
// enforcing the TTL or the checksum. It is the way to look at data whose
// checksum does not match.
func (c *Codec) Inspect(s string) (*Envelope, error) {
	env, _, err := c.unwrap(s, -1)
	if err != nil {
		return nil, err
	}
	h, err := readHeader(env)
	if err != nil {
		return nil, err
	}
	section := env[h.size():]
	out := &Envelope{
		Flags:      h.Flags,
		Checksum:   h.Checksum,
		CreatedAt:  h.CreatedAt,
		TTLSeconds: h.TTLSeconds,
		StoredSize: len(section),
	}
	if h.Flags.Compressed() {
		if out.OriginalSize, err = originalSize(section); err != nil {
			return nil, err
		}
	}
	if out.Payload, err = decompressPayload(c.compressor, h.Flags, section); err != nil {
		return nil, err
	}
	return out, nil
}

// GetChecksumInfo returns the stored checksum next to one recomputed over
// the recovered payload.
func (c *Codec) GetChecksumInfo(s string) (ChecksumInfo, error) {
	e, err := c.Inspect(s)
	if err != nil {
		return ChecksumInfo{}, err
	}
	computed := Checksum(e.Payload)
	return ChecksumInfo{
		Stored:   e.Checksum,
		Computed: computed,
		Match:    computed == e.Checksum,
	}, nil
}

// Verify decodes s without checking the TTL. A checksum mismatch yields
// false with a nil error; every other failure is returned.
func (c *Codec) Verify(s string) (bool, error) {
	_, err := c.Decode(s, WithCheckTTL(false))
	if errors.Is(err, ErrChecksumMismatch) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DecodedLen returns the exact length of the payload s decodes to, taken
// from the header without decompressing.
func (c *Codec) DecodedLen(s string) (int, error) {
	env, total, err := c.unwrap(s, headerSize+ttlBlockSize+sizePrefixSize)
	if err != nil {
		return 0, err
	}
	h, err := readHeader(env)
	if err != nil {
		return 0, err
	}
	if !h.Flags.Compressed() {
		return total - h.size(), nil
	}
	n, err := originalSize(env[h.size():])
	if err != nil {
		return 0, fmt.Errorf("%w: envelope is %d bytes", err, total)
	}
	return n, nil
}
