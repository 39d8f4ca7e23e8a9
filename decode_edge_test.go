package dxcode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

// rawEnvelope builds an uncompressed envelope for payload with the given
// flags and checksum.
func rawEnvelope(flags Flags, sum uint16, payload []byte) []byte {
	env := make([]byte, headerSize+len(payload))
	env[0] = byte(flags)
	binary.BigEndian.PutUint16(env[1:3], sum)
	copy(env[headerSize:], payload)
	return env
}

// deflatedEnvelope builds a compressed envelope whose size prefix declares
// declared bytes.
func deflatedEnvelope(t *testing.T, payload []byte, declared int) []byte {
	t.Helper()
	stream, err := DeflateCompressor{Level: 9}.Compress(payload)
	if err != nil {
		t.Fatal(err)
	}
	env := rawEnvelope(FlagCompressed|FlagAlgoDeflate, Checksum(payload), make([]byte, sizePrefixSize))
	binary.BigEndian.PutUint16(env[headerSize:], uint16(declared))
	return append(env, stream...)
}

func TestDecodeEnvelopeFaults(t *testing.T) {
	payload := bytes.Repeat([]byte("edge case "), 10)
	cases := []struct {
		name string
		env  []byte
		want error
	}{
		{"unknown flag bit", rawEnvelope(0x08, 0, nil), ErrInvalidFlags},
		{"high flag bits", rawEnvelope(0xF0|FlagHasTTL, 0, nil), ErrInvalidFlags},
		{"truncated ttl block", []byte{byte(FlagHasTTL), 0, 0, 1, 2, 3}, ErrInvalidHeader},
		{"compressed without size prefix", []byte{byte(FlagCompressed | FlagAlgoDeflate), 0, 0, 0x01}, ErrInvalidHeader},
		{"compressed without algorithm", rawEnvelope(FlagCompressed, 0, []byte{0x00, 0x03, 0x01}), ErrCompression},
		{"size prefix too large", deflatedEnvelope(t, payload, len(payload)+1), ErrCompression},
		{"size prefix too small", deflatedEnvelope(t, payload, len(payload)-1), ErrCompression},
		{"checksum mismatch", rawEnvelope(0, 0x1234, []byte("Hi")), ErrChecksumMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(wrapEnvelope(tc.env))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDecodeHandBuiltCompressed(t *testing.T) {
	payload := bytes.Repeat([]byte("edge case "), 10)
	got, err := Decode(wrapEnvelope(deflatedEnvelope(t, payload, len(payload))))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("mismatch")
	}
}

func TestDecodeDeflateBitWithoutCompressed(t *testing.T) {
	payload := []byte("raw data")
	s := wrapEnvelope(rawEnvelope(FlagAlgoDeflate, Checksum(payload), payload))
	got, err := Decode(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("mismatch")
	}
}

func TestDecodeWithoutCompressor(t *testing.T) {
	payload := bytes.Repeat([]byte{'z'}, 200)
	s, err := Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	c := New(WithCompressor(nil))
	if _, err := c.Decode(s); !errors.Is(err, ErrCompression) {
		t.Fatalf("expected ErrCompression, got %v", err)
	}

	// Without the capability payloads are stored raw and still decode.
	s, err = c.Encode(payload)
	if err != nil {
		t.Fatal(err)
	}
	if compressed, _ := c.IsCompressed(s); compressed {
		t.Fatal("expected raw storage")
	}
	got, err := c.Decode(s)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("mismatch")
	}
}

func TestDecodeExpiredBeforeChecksum(t *testing.T) {
	now := time.Unix(2_000_000_000, 0)
	env := make([]byte, headerSize+ttlBlockSize)
	writeHeader(env, envelopeHeader{
		Flags:      FlagHasTTL,
		Checksum:   0xBEEF,
		CreatedAt:  1_000,
		TTLSeconds: 10,
	})
	env = append(env, "bad"...)
	c := New(WithClock(fixedClock(&now)))

	if _, err := c.Decode(wrapEnvelope(env)); !errors.Is(err, ErrTTLExpired) {
		t.Fatalf("expected ErrTTLExpired, got %v", err)
	}
	if _, err := c.Decode(wrapEnvelope(env), WithCheckTTL(false)); !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestDecodeTTLBoundary(t *testing.T) {
	created := time.Unix(1_700_000_000, 0)
	now := created
	c := New(WithClock(fixedClock(&now)))
	s, err := c.Encode([]byte("boundary"), WithTTL(10))
	if err != nil {
		t.Fatal(err)
	}

	now = created.Add(10 * time.Second)
	if _, err := c.Decode(s); err != nil {
		t.Fatalf("decode at expiry instant: %v", err)
	}
	now = created.Add(11 * time.Second)
	if _, err := c.Decode(s); !errors.Is(err, ErrTTLExpired) {
		t.Fatalf("expected ErrTTLExpired, got %v", err)
	}
}

func TestDecodeTTLNoWrap(t *testing.T) {
	now := time.Unix(0xFFFFFFF0, 0)
	env := make([]byte, headerSize+ttlBlockSize)
	writeHeader(env, envelopeHeader{
		Flags:      FlagHasTTL,
		Checksum:   Checksum(nil),
		CreatedAt:  0xFFFFFFF0,
		TTLSeconds: 0xFFFFFFFF,
	})
	c := New(WithClock(fixedClock(&now)))
	if _, err := c.Decode(wrapEnvelope(env)); err != nil {
		t.Fatalf("expiry must not wrap around: %v", err)
	}
}
