package keyformat

import (
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

// Layout del volcado hex: dígitos en mayúscula, espacio cada 8, salto de
// línea cada 64, newline final siempre.
const (
	hexGroupLen = 8
	hexLineLen  = 64
)

// ParseHexDER lee un SubjectPublicKeyInfo volcado como texto hexadecimal,
// con whitespace libre entre los dígitos.
func ParseHexDER(text []byte) (*rsakey.Key, error) {
	der, err := rsakey.DecodeHex(string(text))
	if err != nil {
		return nil, err
	}
	return parseSPKI(der)
}

// EncodeHexDER emite el DER de la parte pública como volcado hexadecimal.
func EncodeHexDER(k *rsakey.Key) ([]byte, error) {
	pub, err := k.PublicKey()
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshal spki: %w", err)
	}

	digits := strings.ToUpper(hex.EncodeToString(der))
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/hexGroupLen + 2)
	for i := 0; i < len(digits); i++ {
		b.WriteByte(digits[i])
		switch {
		case (i+1)%hexLineLen == 0:
			b.WriteByte('\n')
		case (i+1)%hexGroupLen == 0 && i+1 < len(digits):
			b.WriteByte(' ')
		}
	}
	out := b.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out), nil
}
