package dxcode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Function variables for testing injection.
var (
	newFlateWriter = func(w io.Writer, level int) (*flate.Writer, error) { return flate.NewWriter(w, level) }
	flateWrite     = func(w *flate.Writer, p []byte) (int, error) { return w.Write(p) }
	flateClose     = func(w *flate.Writer) error { return w.Close() }
	readAll        = io.ReadAll
)

// Compressor is the compression capability a Codec delegates to. Compress
// must produce a raw DEFLATE stream (RFC 1951), since that is what the
// envelope's algorithm flag declares. Decompress must return exactly
// expectedLen bytes or an error.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte, expectedLen int) ([]byte, error)
}

// DeflateCompressor implements Compressor with raw DEFLATE streams.
//
// Level takes the flate package levels; the zero value stores blocks
// uncompressed, so such output is never smaller than the input and is
// always rejected by the size gate.
type DeflateCompressor struct {
	Level int
}

// DefaultCompressor is the Compressor used by New unless WithCompressor is
// given.
var DefaultCompressor Compressor = DeflateCompressor{Level: flate.BestCompression}

func (d DeflateCompressor) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := deflateTo(&buf, d.Level, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// deflateTo writes DEFLATE-compressed data to w.
func deflateTo(w io.Writer, level int, in []byte) error {
	fw, err := newFlateWriter(w, level)
	if err != nil {
		return err
	}
	if _, err := flateWrite(fw, in); err != nil {
		_ = flateClose(fw)
		return err
	}
	return flateClose(fw)
}

// Decompress inflates src. It reads at most one byte past expectedLen so a
// stream that expands beyond its declared size is rejected without being
// fully materialised.
func (DeflateCompressor) Decompress(src []byte, expectedLen int) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(src))
	defer r.Close()
	b, err := readAll(io.LimitReader(r, int64(expectedLen)+1))
	if err != nil {
		return nil, err
	}
	if len(b) != expectedLen {
		return nil, fmt.Errorf("inflated %d bytes, expected %d", len(b), expectedLen)
	}
	return b, nil
}

// compressPayload builds the payload section for data. Compression is only
// attempted for payloads of at least CompressionThreshold bytes that fit the
// two-byte size prefix, and only kept when it saves space after the prefix.
// Otherwise data is returned as-is with no flags.
func compressPayload(comp Compressor, allow bool, data []byte) (Flags, []byte, error) {
	if !allow || comp == nil || len(data) < CompressionThreshold || len(data) > MaxCompressedSize {
		return 0, data, nil
	}
	compressed, err := comp.Compress(data)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if len(compressed)+sizePrefixSize >= len(data) {
		return 0, data, nil
	}
	payload := make([]byte, sizePrefixSize+len(compressed))
	binary.BigEndian.PutUint16(payload[:sizePrefixSize], uint16(len(data)))
	copy(payload[sizePrefixSize:], compressed)
	return FlagCompressed | FlagAlgoDeflate, payload, nil
}

// decompressPayload recovers the original bytes from a payload section.
// Uncompressed sections are returned as-is.
func decompressPayload(comp Compressor, flags Flags, section []byte) ([]byte, error) {
	if !flags.Compressed() {
		return section, nil
	}
	size, err := originalSize(section)
	if err != nil {
		return nil, err
	}
	if !flags.Deflate() {
		return nil, fmt.Errorf("%w: unknown compression algorithm (flags %s)", ErrCompression, flags)
	}
	if comp == nil {
		return nil, fmt.Errorf("%w: no decompressor available", ErrCompression)
	}
	out, err := comp.Decompress(section[sizePrefixSize:], size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if len(out) != size {
		return nil, fmt.Errorf("%w: decompressed length %d != expected %d", ErrCompression, len(out), size)
	}
	return out, nil
}

// originalSize reads the size prefix of a compressed payload section.
func originalSize(section []byte) (int, error) {
	if len(section) < sizePrefixSize {
		return 0, fmt.Errorf("%w: compressed payload too short for size prefix", ErrInvalidHeader)
	}
	return int(binary.BigEndian.Uint16(section[:sizePrefixSize])), nil
}
