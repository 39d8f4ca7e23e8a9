package dxcode

import (
	"encoding/binary"
	"fmt"
	"time"
)

type envelopeHeader struct {
	Flags      Flags
	Checksum   uint16
	CreatedAt  uint32
	TTLSeconds uint32
}

// size is the number of envelope bytes the header occupies.
func (h envelopeHeader) size() int {
	if h.Flags.HasTTL() {
		return headerSize + ttlBlockSize
	}
	return headerSize
}

func writeHeader(buf []byte, h envelopeHeader) int {
	buf[0] = byte(h.Flags)
	binary.BigEndian.PutUint16(buf[1:3], h.Checksum)
	if !h.Flags.HasTTL() {
		return headerSize
	}
	binary.BigEndian.PutUint32(buf[3:7], h.CreatedAt)
	binary.BigEndian.PutUint32(buf[7:11], h.TTLSeconds)
	return headerSize + ttlBlockSize
}

// readFlags parses and validates the flags byte only.
func readFlags(env []byte) (Flags, error) {
	if len(env) < headerSize {
		return 0, fmt.Errorf("%w: envelope is %d bytes, need %d", ErrInvalidHeader, len(env), headerSize)
	}
	f := Flags(env[0])
	if !f.valid() {
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidFlags, byte(f))
	}
	return f, nil
}

func readHeader(env []byte) (envelopeHeader, error) {
	f, err := readFlags(env)
	if err != nil {
		return envelopeHeader{}, err
	}
	h := envelopeHeader{
		Flags:    f,
		Checksum: binary.BigEndian.Uint16(env[1:3]),
	}
	if !f.HasTTL() {
		return h, nil
	}
	if len(env) < headerSize+ttlBlockSize {
		return envelopeHeader{}, fmt.Errorf("%w: envelope is %d bytes, TTL block needs %d", ErrInvalidHeader, len(env), headerSize+ttlBlockSize)
	}
	h.CreatedAt = binary.BigEndian.Uint32(env[3:7])
	h.TTLSeconds = binary.BigEndian.Uint32(env[7:11])
	return h, nil
}

// expiresAt returns the expiry as Unix seconds, or 0 if the header never
// expires. It is computed in 64 bits so it cannot wrap.
func (h envelopeHeader) expiresAt() int64 {
	if !h.Flags.HasTTL() || h.TTLSeconds == 0 {
		return 0
	}
	return int64(h.CreatedAt) + int64(h.TTLSeconds)
}

func (h envelopeHeader) expired(now time.Time) bool {
	exp := h.expiresAt()
	return exp != 0 && now.Unix() > exp
}

func (h envelopeHeader) ttlInfo(now time.Time) TTLInfo {
	info := TTLInfo{
		CreatedAt: time.Unix(int64(h.CreatedAt), 0).UTC(),
		TTL:       time.Duration(h.TTLSeconds) * time.Second,
		Expired:   h.expired(now),
	}
	if exp := h.expiresAt(); exp != 0 {
		info.ExpiresAt = time.Unix(exp, 0).UTC()
	}
	return info
}
