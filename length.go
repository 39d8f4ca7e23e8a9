package dxcode

// EncodedLen returns the length of the text Encode produces for n payload
// bytes stored uncompressed without a TTL block.
func EncodedLen(n int) int {
	if n < 0 {
		n = 0
	}
	return len(Prefix) + packedLen(headerSize+n)
}

// RequiredCapacity returns a buffer size that always fits the output of
// EncodeTo for n payload bytes. Compression only ever shrinks the envelope,
// so the uncompressed layout is the worst case.
func RequiredCapacity(n int, withTTL bool) int {
	if n < 0 {
		n = 0
	}
	m := headerSize + n
	if withTTL {
		m += ttlBlockSize
	}
	return len(Prefix) + packedLen(m)
}

// DecodedLenUpperBound returns the number of envelope bytes a DX string of
// encodedLen characters can carry. A payload stored uncompressed is never
// longer; a compressed payload may be, up to MaxCompressedSize, so use
// DecodedLen for the exact figure.
func DecodedLenUpperBound(encodedLen int) int {
	if encodedLen <= len(Prefix) {
		return 0
	}
	return (encodedLen - len(Prefix)) / 4 * 3
}
