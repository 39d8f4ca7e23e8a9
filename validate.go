package dxcode

import (
	"fmt"
	"strings"
)

// IsEncoded reports whether s is structurally a DX string: it carries the
// prefix, a non-empty body whose length is a multiple of four, and only
// alphabet symbols with padding confined to the final one or two positions.
// It does not decode the envelope or check the checksum or TTL.
func IsEncoded(s string) bool {
	if !strings.HasPrefix(s, Prefix) {
		return false
	}
	body := s[len(Prefix):]
	if len(body) == 0 {
		return false
	}
	_, err := validateSymbols(body)
	return err == nil
}

// validateSymbols checks the body of an encoded string and returns the
// number of padding characters at its end.
func validateSymbols(s string) (pad int, err error) {
	n := len(s)
	if n%4 != 0 {
		return 0, fmt.Errorf("%w: %d symbols is not a multiple of 4", ErrInvalidLength, n)
	}
	for i := 0; i < n; i++ {
		c := s[i]
		if c == Padding {
			if i < n-2 || (i == n-2 && s[n-1] != Padding) {
				return 0, fmt.Errorf("%w: misplaced padding at offset %d", ErrInvalidCharacter, i)
			}
			pad++
			continue
		}
		if _, ok := valueFor(c); !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, c, i)
		}
	}
	return pad, nil
}

// splitPrefix validates the signature and encoded length and returns the
// symbol body.
func splitPrefix(s string, limits Limits) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidInput)
	}
	if !strings.HasPrefix(s, Prefix) {
		return "", ErrInvalidPrefix
	}
	if len(s) > limits.MaxEncodedLen {
		return "", fmt.Errorf("%w: encoded length %d exceeds %d", ErrOutOfMemory, len(s), limits.MaxEncodedLen)
	}
	return s[len(Prefix):], nil
}
