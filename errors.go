package dxcode

import "errors"

var (
	ErrInvalidInput     = errors.New("dxcode: invalid input")
	ErrInvalidPrefix    = errors.New("dxcode: missing dx prefix")
	ErrInvalidLength    = errors.New("dxcode: invalid length")
	ErrInvalidCharacter = errors.New("dxcode: invalid character")
	ErrBufferTooSmall   = errors.New("dxcode: buffer too small")
	ErrOutOfMemory      = errors.New("dxcode: allocation limit exceeded")
	ErrInvalidHeader    = errors.New("dxcode: invalid header")
	ErrInvalidFlags     = errors.New("dxcode: invalid flags")
	ErrChecksumMismatch = errors.New("dxcode: checksum mismatch")
	ErrCompression      = errors.New("dxcode: compression error")
	ErrTTLExpired       = errors.New("dxcode: data expired")
)

// Numeric error codes shared with the C bindings. Zero means success.
const (
	CodeOK               = 0
	CodeInvalidInput     = -1
	CodeInvalidPrefix    = -2
	CodeInvalidLength    = -3
	CodeInvalidCharacter = -4
	CodeBufferTooSmall   = -5
	CodeOutOfMemory      = -6
	CodeInvalidHeader    = -7
	CodeInvalidFlags     = -8
	CodeChecksumMismatch = -9
	CodeCompression      = -10
	CodeTTLExpired       = -11
	CodeUnknown          = -99
)

var errorCodes = []struct {
	err  error
	code int
}{
	{ErrInvalidInput, CodeInvalidInput},
	{ErrInvalidPrefix, CodeInvalidPrefix},
	{ErrInvalidLength, CodeInvalidLength},
	{ErrInvalidCharacter, CodeInvalidCharacter},
	{ErrBufferTooSmall, CodeBufferTooSmall},
	{ErrOutOfMemory, CodeOutOfMemory},
	{ErrInvalidHeader, CodeInvalidHeader},
	{ErrInvalidFlags, CodeInvalidFlags},
	{ErrChecksumMismatch, CodeChecksumMismatch},
	{ErrCompression, CodeCompression},
	{ErrTTLExpired, CodeTTLExpired},
}

// Code returns the numeric code for err, CodeOK for nil and CodeUnknown for
// errors outside the dxcode taxonomy.
func Code(err error) int {
	if err == nil {
		return CodeOK
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeUnknown
}
