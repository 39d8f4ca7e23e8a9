package dxcode

const invalidSymbol = 0xFF

// Both tables are filled during package initialisation and never written
// afterwards.
var (
	encodeTable = buildEncodeTable()
	decodeTable = buildDecodeTable()
)

// buildEncodeTable folds the Magic XOR into a value-to-symbol table.
func buildEncodeTable() [64]byte {
	var t [64]byte
	for v := range t {
		t[v] = Alphabet[(byte(v)^Magic)&0x3F]
	}
	return t
}

// buildDecodeTable maps every byte to its 6-bit value, or invalidSymbol if
// the byte is not part of Alphabet.
func buildDecodeTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = (byte(i) ^ Magic) & 0x3F
	}
	return t
}

func symbolFor(v byte) byte {
	return encodeTable[v&0x3F]
}

// valueFor returns the 6-bit value of c and false if c is not a symbol.
func valueFor(c byte) (byte, bool) {
	v := decodeTable[c]
	return v, v != invalidSymbol
}

// packedLen is the number of symbols needed for n bytes, padding included.
func packedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 2) / 3 * 4
}

// pack writes the symbols for src into dst, which must hold packedLen(len(src))
// bytes.
func pack(dst, src []byte) {
	n := len(src)
	di := 0
	for i := 0; i < n; i += 3 {
		b0 := src[i]
		var b1, b2 byte
		if i+1 < n {
			b1 = src[i+1]
		}
		if i+2 < n {
			b2 = src[i+2]
		}

		dst[di] = symbolFor(b0 >> 2)
		dst[di+1] = symbolFor((b0&0x03)<<4 | b1>>4)
		if i+1 < n {
			dst[di+2] = symbolFor((b1&0x0F)<<2 | b2>>6)
		} else {
			dst[di+2] = Padding
		}
		if i+2 < n {
			dst[di+3] = symbolFor(b2 & 0x3F)
		} else {
			dst[di+3] = Padding
		}
		di += 4
	}
}

// unpack decodes the symbol groups in s. total is the number of bytes s
// encodes. If limit is non-negative only the groups covering the first limit
// bytes are decoded, so out may be shorter than total.
func unpack(s string, limit int) (out []byte, total int, err error) {
	pad, err := validateSymbols(s)
	if err != nil {
		return nil, 0, err
	}
	total = len(s)/4*3 - pad
	n := total
	if limit >= 0 && limit < n {
		n = limit
	}
	groups := (n + 2) / 3
	out = make([]byte, groups*3)
	for g := 0; g < groups; g++ {
		si := g * 4
		v0 := symbolValue(s[si])
		v1 := symbolValue(s[si+1])
		v2 := symbolValue(s[si+2])
		v3 := symbolValue(s[si+3])

		oi := g * 3
		out[oi] = v0<<2 | v1>>4
		out[oi+1] = (v1&0x0F)<<4 | v2>>2
		out[oi+2] = (v2&0x03)<<6 | v3
	}
	return out[:n], total, nil
}

// symbolValue assumes c has already passed validateSymbols.
func symbolValue(c byte) byte {
	if c == Padding {
		return 0
	}
	return decodeTable[c]
}
