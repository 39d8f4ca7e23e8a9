package dxcode

import (
	"strings"
	"time"
)

// Version is the DX format revision implemented by this package.
const Version = "2.3.0"

const (
	// Prefix is the signature every encoded string starts with.
	Prefix = "dx"

	// Alphabet lists the 64 output symbols; position i encodes value i
	// (after the Magic XOR).
	Alphabet = "DXdx0123456789ABCEFGHIJKLMNOPQRSTUVWYZabcefghijklmnopqrstuvwyz-_"

	// Magic is XORed into every 6-bit value before alphabet lookup.
	Magic byte = 0x44

	// Padding marks absent trailing bytes in the final group.
	Padding byte = '='

	// CompressionThreshold is the smallest payload for which compression
	// is attempted.
	CompressionThreshold = 32

	// MaxCompressedSize is the largest payload that can be stored
	// compressed; the original size field is two bytes wide.
	MaxCompressedSize = 0xFFFF
)

const (
	headerSize     = 3
	ttlBlockSize   = 8
	sizePrefixSize = 2
)

// Flags is the envelope flags byte.
type Flags uint8

const (
	FlagCompressed  Flags = 0x01
	FlagAlgoDeflate Flags = 0x02
	FlagHasTTL      Flags = 0x04

	validFlagsMask = FlagCompressed | FlagAlgoDeflate | FlagHasTTL
)

func (f Flags) Compressed() bool { return f&FlagCompressed != 0 }
func (f Flags) Deflate() bool    { return f&FlagAlgoDeflate != 0 }
func (f Flags) HasTTL() bool     { return f&FlagHasTTL != 0 }

func (f Flags) valid() bool { return f&^validFlagsMask == 0 }

// String renders the set bits, e.g. "compressed|deflate|ttl", or "none".
func (f Flags) String() string {
	var parts []string
	if f.Compressed() {
		parts = append(parts, "compressed")
	}
	if f.Deflate() {
		parts = append(parts, "deflate")
	}
	if f.HasTTL() {
		parts = append(parts, "ttl")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// TTLInfo describes the TTL block of an envelope.
//
// ExpiresAt is the zero time when TTL is zero, meaning the data never expires.
type TTLInfo struct {
	CreatedAt time.Time
	TTL       time.Duration
	ExpiresAt time.Time
	Expired   bool
}

// ChecksumInfo compares the stored checksum with one recomputed over the
// recovered payload.
type ChecksumInfo struct {
	Stored   uint16
	Computed uint16
	Match    bool
}

// Envelope is a parsed DX envelope as returned by Inspect.
//
// Payload holds the recovered original bytes (decompressed if needed); it is
// not checked against Checksum.
type Envelope struct {
	Flags        Flags
	Checksum     uint16
	CreatedAt    uint32 // valid only if Flags.HasTTL()
	TTLSeconds   uint32 // valid only if Flags.HasTTL()
	OriginalSize int    // stored size prefix, valid only if Flags.Compressed()
	StoredSize   int    // bytes occupied by the payload section
	Payload      []byte
}

// Info describes the format parameters.
type Info struct {
	Name                 string `json:"name"`
	Version              string `json:"version"`
	Alphabet             string `json:"alphabet"`
	Prefix               string `json:"prefix"`
	Magic                int    `json:"magic"`
	Padding              string `json:"padding"`
	Checksum             string `json:"checksum"`
	Compression          string `json:"compression"`
	CompressionThreshold int    `json:"compression_threshold"`
}

// GetInfo returns the format parameters.
func GetInfo() Info {
	return Info{
		Name:                 "DX Encoding",
		Version:              Version,
		Alphabet:             Alphabet,
		Prefix:               Prefix,
		Magic:                int(Magic),
		Padding:              string(Padding),
		Checksum:             "CRC16-CCITT",
		Compression:          "DEFLATE",
		CompressionThreshold: CompressionThreshold,
	}
}
