// Package main provides C-compatible exports for the dxcode library.
// Build with: go build -buildmode=c-shared -o dxcode.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data.
// code is 0 on success or one of the negative DX error codes.
typedef struct {
    char* data;
    int   data_len;
    int   code;
    char* error;
} DxResult;
*/
import "C"

import (
	"unsafe"

	"github.com/logicossoftware/go-dxcode"
)

func main() {}

// DxFreeResult frees memory allocated by other Dx functions.
// Must be called to avoid memory leaks.
//
//export DxFreeResult
func DxFreeResult(result C.DxResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// DxFreeString frees a C string allocated by Go.
//
//export DxFreeString
func DxFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data. Text results are NUL-terminated;
// data_len never counts the terminator.
func makeResult(data []byte, text bool) C.DxResult {
	var result C.DxResult
	if text {
		result.data = C.CString(string(data))
	} else if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
	}
	result.data_len = C.int(len(data))
	return result
}

// makeError creates a result with an error code and message.
func makeError(err error) C.DxResult {
	var result C.DxResult
	result.code = C.int(dxcode.Code(err))
	result.error = C.CString(err.Error())
	return result
}

func goBytes(data *C.char, dataLen C.int) []byte {
	if data == nil || dataLen <= 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), dataLen)
}

func encode(data *C.char, dataLen C.int, compress C.int, opts ...dxcode.EncodeOption) C.DxResult {
	if data == nil && dataLen > 0 {
		return makeError(dxcode.ErrInvalidInput)
	}
	opts = append(opts, dxcode.WithCompression(compress != 0))
	s, err := dxcode.Encode(goBytes(data, dataLen), opts...)
	if err != nil {
		return makeError(err)
	}
	return makeResult([]byte(s), true)
}

// DxEncode encodes dataLen bytes at data as a NUL-terminated DX string.
// Parameters:
//   - data: pointer to the payload (may be NULL when dataLen is 0)
//   - dataLen: length of the payload
//   - compress: non-zero allows DEFLATE compression
//
// Returns DxResult with the encoded string or an error. Call DxFreeResult when done.
//
//export DxEncode
func DxEncode(data *C.char, dataLen C.int, compress C.int) C.DxResult {
	return encode(data, dataLen, compress)
}

// DxEncodeWithTTL is DxEncode with a TTL block expiring ttlSeconds after
// encoding. A ttlSeconds of 0 never expires.
//
//export DxEncodeWithTTL
func DxEncodeWithTTL(data *C.char, dataLen C.int, ttlSeconds C.uint32_t, compress C.int) C.DxResult {
	return encode(data, dataLen, compress, dxcode.WithTTL(uint32(ttlSeconds)))
}

// DxDecode decodes a NUL-terminated DX string.
// Parameters:
//   - encoded: the DX string
//   - checkTTL: non-zero rejects expired data with code -11
//
// Returns DxResult with the payload bytes or an error. Call DxFreeResult when done.
//
//export DxDecode
func DxDecode(encoded *C.char, checkTTL C.int) C.DxResult {
	if encoded == nil {
		return makeError(dxcode.ErrInvalidInput)
	}
	data, err := dxcode.Decode(C.GoString(encoded), dxcode.WithCheckTTL(checkTTL != 0))
	if err != nil {
		return makeError(err)
	}
	return makeResult(data, false)
}

// DxIsEncoded returns 1 if s is structurally a DX string, 0 otherwise.
//
//export DxIsEncoded
func DxIsEncoded(s *C.char) C.int {
	if s != nil && dxcode.IsEncoded(C.GoString(s)) {
		return 1
	}
	return 0
}

// DxVerify returns 1 if the checksum of encoded matches, 0 if it does not,
// or a negative error code for malformed input.
//
//export DxVerify
func DxVerify(encoded *C.char) C.int {
	if encoded == nil {
		return C.int(dxcode.CodeInvalidInput)
	}
	ok, err := dxcode.Verify(C.GoString(encoded))
	if err != nil {
		return C.int(dxcode.Code(err))
	}
	if ok {
		return 1
	}
	return 0
}

var errorStrings = map[int]string{
	dxcode.CodeOK:               "success",
	dxcode.CodeInvalidInput:     "invalid input",
	dxcode.CodeInvalidPrefix:    "invalid prefix",
	dxcode.CodeInvalidLength:    "invalid length",
	dxcode.CodeInvalidCharacter: "invalid character",
	dxcode.CodeBufferTooSmall:   "buffer too small",
	dxcode.CodeOutOfMemory:      "allocation limit exceeded",
	dxcode.CodeInvalidHeader:    "invalid header",
	dxcode.CodeInvalidFlags:     "invalid flags",
	dxcode.CodeChecksumMismatch: "checksum mismatch",
	dxcode.CodeCompression:      "compression error",
	dxcode.CodeTTLExpired:       "data expired",
}

// DxErrorString describes an error code. Call DxFreeString on the result.
//
//export DxErrorString
func DxErrorString(code C.int) *C.char {
	if s, ok := errorStrings[int(code)]; ok {
		return C.CString(s)
	}
	return C.CString("unknown error")
}
