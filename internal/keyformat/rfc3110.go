package keyformat

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"

	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

const rfc3110Prefix = "0s"

// ParseRFC3110 lee una clave pública en el formato DNS de RFC 3110:
// "0s" seguido del base64 de [len(e) en 1 byte][e][n]. Un byte de
// longitud 0 señala la forma extendida de 3 bytes del RFC, que queda
// fuera de alcance.
func ParseRFC3110(text []byte) (*rsakey.Key, error) {
	body := strings.TrimPrefix(strings.TrimSpace(string(text)), rfc3110Prefix)
	wire, err := rsakey.DecodeBase64(body)
	if err != nil {
		return nil, fmt.Errorf("%w: cuerpo rfc3110 no decodifica", ErrUnrecognizedFormat)
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("%w: cuerpo rfc3110 vacío", ErrUnrecognizedFormat)
	}
	elen := int(wire[0])
	if elen == 0 {
		return nil, fmt.Errorf("%w: longitud de exponente multibyte", ErrUnsupportedKeyLength)
	}
	rest := wire[1:]
	if len(rest) < elen+1 {
		return nil, fmt.Errorf("%w: rfc3110 truncado", ErrUnrecognizedFormat)
	}
	e := new(big.Int).SetBytes(rest[:elen])
	n := new(big.Int).SetBytes(rest[elen:])
	return rsakey.FromPublic(n, e)
}

// EncodeRFC3110 emite la parte pública como línea RFC 3110. El
// exponente tiene que entrar en un byte de longitud (hasta 255 bytes).
func EncodeRFC3110(k *rsakey.Key) ([]byte, error) {
	eb := k.E.Bytes()
	if len(eb) > 0xFF {
		return nil, fmt.Errorf("%w: exponente de %d bytes", ErrUnsupportedKeyLength, len(eb))
	}
	nb := k.N.Bytes()
	wire := make([]byte, 0, 1+len(eb)+len(nb))
	wire = append(wire, byte(len(eb)))
	wire = append(wire, eb...)
	wire = append(wire, nb...)
	return []byte(rfc3110Prefix + base64.StdEncoding.EncodeToString(wire) + "\n"), nil
}
