package keyformat

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

// e=17, n=3233: wire = 0x01 0x11 0x0C 0xA1 => base64 "AREMoQ==".
const toyRFC3110 = "0sAREMoQ=="

func TestParseRFC3110_KnownVector(t *testing.T) {
	t.Parallel()
	for _, in := range []string{toyRFC3110, "0sAREMoQ", "  " + toyRFC3110 + "\n"} {
		k, err := ParseRFC3110([]byte(in))
		if err != nil {
			t.Fatalf("ParseRFC3110(%q) err: %v", in, err)
		}
		if k.E.Int64() != 17 || k.N.Int64() != 3233 {
			t.Fatalf("ParseRFC3110(%q): e=%v n=%v", in, k.E, k.N)
		}
		if k.IsPrivate() {
			t.Fatalf("rfc3110 nunca trae material privado")
		}
	}
}

func TestEncodeRFC3110_KnownVector(t *testing.T) {
	t.Parallel()
	k, err := rsakey.FromPublic(big.NewInt(3233), big.NewInt(17))
	if err != nil {
		t.Fatalf("FromPublic err: %v", err)
	}
	out, err := EncodeRFC3110(k)
	if err != nil {
		t.Fatalf("EncodeRFC3110 err: %v", err)
	}
	if string(out) != toyRFC3110+"\n" {
		t.Fatalf("got %q want %q", out, toyRFC3110+"\n")
	}
}

func TestRFC3110_RoundTrip(t *testing.T) {
	t.Parallel()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey err: %v", err)
	}
	k := rsakey.FromRSAPublic(&priv.PublicKey)

	enc, err := EncodeRFC3110(k)
	if err != nil {
		t.Fatalf("EncodeRFC3110 err: %v", err)
	}
	if !strings.HasPrefix(string(enc), "0s") || strings.Count(string(enc), "\n") != 1 {
		t.Fatalf("salida rfc3110 malformada: %q", enc)
	}

	back, err := ParseRFC3110(enc)
	if err != nil {
		t.Fatalf("ParseRFC3110 err: %v", err)
	}
	if back.N.Cmp(k.N) != 0 || back.E.Cmp(k.E) != 0 {
		t.Fatalf("round trip no preserva n/e")
	}
}

func TestParseRFC3110_Errors(t *testing.T) {
	t.Parallel()

	// byte de longitud 0: forma extendida del RFC, no soportada
	if _, err := ParseRFC3110([]byte("0sAAE=")); !errors.Is(err, ErrUnsupportedKeyLength) {
		t.Fatalf("expected ErrUnsupportedKeyLength, got %v", err)
	}
	// exponente truncado: dice 2 bytes de e y no alcanzan para e+n
	if _, err := ParseRFC3110([]byte("0sAhE=")); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
	// base64 irrecuperable
	if _, err := ParseRFC3110([]byte("0s====")); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
	// cuerpo vacío tras el prefijo
	if _, err := ParseRFC3110([]byte("0s")); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
}

func TestEncodeRFC3110_OversizedExponent(t *testing.T) {
	t.Parallel()
	// 2^2048 ocupa 257 bytes: no entra en un byte de longitud
	e := new(big.Int).Lsh(big.NewInt(1), 2048)
	k, err := rsakey.FromPublic(big.NewInt(3233), e)
	if err != nil {
		t.Fatalf("FromPublic err: %v", err)
	}
	if _, err := EncodeRFC3110(k); !errors.Is(err, ErrUnsupportedKeyLength) {
		t.Fatalf("expected ErrUnsupportedKeyLength, got %v", err)
	}
}
