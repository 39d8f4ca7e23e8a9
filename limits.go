package dxcode

// Limits bounds the allocations a Codec performs. Zero fields take the
// defaults.
type Limits struct {
	MaxEncodedLen int // encoded text accepted by the decoding functions, prefix included
	MaxPayloadLen int // raw payload accepted by Encode
}

func defaultLimits() Limits {
	return Limits{
		MaxEncodedLen: 64 << 20, // 64 MiB
		MaxPayloadLen: 32 << 20, // 32 MiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxEncodedLen <= 0 {
		l.MaxEncodedLen = d.MaxEncodedLen
	}
	if l.MaxPayloadLen <= 0 {
		l.MaxPayloadLen = d.MaxPayloadLen
	}
	return l
}
