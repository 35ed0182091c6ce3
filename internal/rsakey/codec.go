package rsakey

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedHex indica texto hexadecimal con largo impar o caracteres
// fuera de [0-9A-Fa-f].
var ErrMalformedHex = errors.New("malformed_hex")

// DecodeHex decodifica texto hexadecimal a bytes. El whitespace se
// descarta en cualquier posición (los volcados vienen partidos en grupos
// y líneas); el resto debe ser una cantidad par de dígitos hex.
func DecodeHex(s string) ([]byte, error) {
	var clean strings.Builder
	clean.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		clean.WriteRune(r)
	}
	digits := clean.String()
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("%w: largo impar (%d dígitos)", ErrMalformedHex, len(digits))
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return raw, nil
}

// DecodeBase64 decodifica base64 estándar con padding opcional.
func DecodeBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64: %w", err)
	}
	return b, nil
}
