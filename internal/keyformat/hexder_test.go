package keyformat

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

var hexLineRe = regexp.MustCompile(`^[0-9A-F]{8}( [0-9A-F]{8})*( [0-9A-F]{1,8})?$|^[0-9A-F]{1,8}$`)

func TestEncodeHexDER_Layout(t *testing.T) {
	t.Parallel()
	_, k := genKey(t)

	out, err := EncodeHexDER(k)
	if err != nil {
		t.Fatalf("EncodeHexDER err: %v", err)
	}
	s := string(out)
	if !strings.HasSuffix(s, "\n") {
		t.Fatalf("falta el newline final")
	}
	// SPKI de 2048 bits: SEQUENCE largo 0x0122
	if !strings.HasPrefix(s, "30820122 ") {
		t.Fatalf("encabezado DER inesperado: %q", s[:20])
	}

	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		if !hexLineRe.MatchString(line) {
			t.Fatalf("línea %d malformada: %q", i, line)
		}
		digits := strings.ReplaceAll(line, " ", "")
		if len(digits) > 64 {
			t.Fatalf("línea %d con %d dígitos", i, len(digits))
		}
		if i < len(lines)-1 && len(digits) != 64 {
			t.Fatalf("línea intermedia %d corta: %d dígitos", i, len(digits))
		}
	}
}

func TestHexDER_RoundTrip(t *testing.T) {
	t.Parallel()
	_, k := genKey(t)

	enc, err := EncodeHexDER(k)
	if err != nil {
		t.Fatalf("EncodeHexDER err: %v", err)
	}
	back, err := ParseHexDER(enc)
	if err != nil {
		t.Fatalf("ParseHexDER err: %v", err)
	}
	if back.N.Cmp(k.N) != 0 || back.E.Cmp(k.E) != 0 {
		t.Fatalf("round trip no preserva n/e")
	}

	// minúsculas y whitespace arbitrario parsean igual
	relaxed := strings.ToLower(strings.ReplaceAll(string(enc), " ", "\n\t"))
	back2, err := ParseHexDER([]byte(relaxed))
	if err != nil {
		t.Fatalf("ParseHexDER relajado err: %v", err)
	}
	if back2.N.Cmp(k.N) != 0 {
		t.Fatalf("el whitespace no debe cambiar el resultado")
	}
}

func TestParseHexDER_Errors(t *testing.T) {
	t.Parallel()

	// hex roto
	if _, err := ParseHexDER([]byte("GG")); !errors.Is(err, rsakey.ErrMalformedHex) {
		t.Fatalf("expected ErrMalformedHex, got %v", err)
	}
	if _, err := ParseHexDER([]byte("ABC")); !errors.Is(err, rsakey.ErrMalformedHex) {
		t.Fatalf("expected ErrMalformedHex for odd length, got %v", err)
	}
	// hex válido que no es un SPKI
	if _, err := ParseHexDER([]byte("DEADBEEF")); !errors.Is(err, ErrInvalidPEM) {
		t.Fatalf("expected ErrInvalidPEM, got %v", err)
	}
}
