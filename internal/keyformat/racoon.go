package keyformat

import (
	"bytes"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

// Un bloque racoon (ipsec.secrets) trae los enteros de la clave como
// líneas "Nombre: 0xhex". Para reconstruir la clave alcanzan estos
// cinco; Exponent1, Exponent2 y Coefficient no se leen nunca, se
// rederivan de d, p y q.
var racoonRequired = []string{"Modulus", "PublicExponent", "PrivateExponent", "Prime1", "Prime2"}

var racoonFieldRe = regexp.MustCompile(`(?m)^[ \t]*(Modulus|PublicExponent|PrivateExponent|Prime1|Prime2):[ \t]*0x([0-9A-Fa-f]+)[ \t]*\r?$`)

// ParseRacoon lee el bloque ": RSA { ... }" de un ipsec.secrets. Los
// campos pueden venir en cualquier orden; ante duplicados vale la
// primera aparición.
func ParseRacoon(text []byte) (*rsakey.Key, error) {
	vals := make(map[string]*big.Int, len(racoonRequired))
	for _, m := range racoonFieldRe.FindAllSubmatch(text, -1) {
		name := string(m[1])
		if _, dup := vals[name]; dup {
			continue
		}
		v, ok := new(big.Int).SetString(string(m[2]), 16)
		if !ok {
			return nil, fmt.Errorf("campo %s: %w", name, rsakey.ErrMalformedHex)
		}
		vals[name] = v
	}
	for _, name := range racoonRequired {
		if vals[name] == nil {
			return nil, &MissingFieldError{Field: name}
		}
	}
	return rsakey.FromPrivate(
		vals["Modulus"],
		vals["PublicExponent"],
		vals["PrivateExponent"],
		vals["Prime1"],
		vals["Prime2"],
	)
}

// EncodeRacoon emite el bloque RSA para ipsec.secrets: encabezado
// ": RSA {", cuerpo tabulado con el tamaño y la clave pública RFC 3110
// como comentarios, los ocho enteros en 0x-hex minúscula y el cierre
// tabulado con su advertencia. Requiere material privado.
func EncodeRacoon(k *rsakey.Key) ([]byte, error) {
	if !k.IsPrivate() {
		return nil, rsakey.ErrNotPrivate
	}
	pubkey, err := EncodeRFC3110(k)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(": RSA {\n")
	fmt.Fprintf(&b, "\t# RSA %d bits\n", k.Bits())
	fmt.Fprintf(&b, "\t#pubkey=%s\n", strings.TrimSuffix(string(pubkey), "\n"))
	fmt.Fprintf(&b, "\tModulus: %#x\n", k.N)
	fmt.Fprintf(&b, "\tPublicExponent: %#x\n", k.E)
	fmt.Fprintf(&b, "\tPrivateExponent: %#x\n", k.D)
	fmt.Fprintf(&b, "\tPrime1: %#x\n", k.P)
	fmt.Fprintf(&b, "\tPrime2: %#x\n", k.Q)
	fmt.Fprintf(&b, "\tExponent1: %#x\n", k.Dp)
	fmt.Fprintf(&b, "\tExponent2: %#x\n", k.Dq)
	fmt.Fprintf(&b, "\tCoefficient: %#x\n", k.Qinv)
	b.WriteString("\t}\n")
	b.WriteString("# do not change the indentation of that \"}\"\n")
	return b.Bytes(), nil
}
