package keyformat

import (
	"bytes"
	"fmt"

	"github.com/dropDatabas3/keyconv/internal/observability/logger"
	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

// Outputs declara qué codificaciones de salida se piden. Reemplaza
// cualquier estado global: el caller arma el registro y lo pasa entero.
type Outputs struct {
	RFC3110    bool
	PEMPublic  bool
	HexDER     bool
	PEMPrivate bool
	Racoon     bool
}

// Any reporta si se pidió al menos una salida.
func (o Outputs) Any() bool {
	return o.RFC3110 || o.PEMPublic || o.HexDER || o.PEMPrivate || o.Racoon
}

// NeedsPrivate reporta si alguna salida pedida requiere material privado.
func (o Outputs) NeedsPrivate() bool {
	return o.PEMPrivate || o.Racoon
}

// Result es el resultado de una conversión completa.
type Result struct {
	// Format es el formato detectado en la entrada.
	Format Format
	// Key es la clave canónica parseada.
	Key *rsakey.Key
	// Output concatena las salidas pedidas, en el orden fijo
	// rfc3110, pem público, hex DER, pem privado, racoon.
	Output []byte
	// PrivateSkipped queda en true si se pidió una salida privada
	// sobre una clave que solo tiene la parte pública. Las salidas
	// públicas pedidas se emiten igual.
	PrivateSkipped bool
}

// Parse detecta el formato de la entrada y la parsea a la clave
// canónica. Si ningún detector matchea devuelve ErrUnrecognizedFormat.
func Parse(in []byte) (Format, *rsakey.Key, error) {
	format, body := Detect(in)
	var (
		k   *rsakey.Key
		err error
	)
	switch format {
	case FormatPEMPublic:
		k, err = ParsePEMPublic(body)
	case FormatRFC3110:
		k, err = ParseRFC3110(body)
	case FormatHexDER:
		k, err = ParseHexDER(body)
	case FormatPEMPrivate:
		k, err = ParsePEMPrivate(body)
	case FormatRacoon:
		k, err = ParseRacoon(body)
	default:
		return FormatUnknown, nil, ErrUnrecognizedFormat
	}
	if err != nil {
		return format, nil, fmt.Errorf("parse %s: %w", format, err)
	}
	return format, k, nil
}

// Convert corre el pipeline completo: detectar, parsear y codificar las
// salidas pedidas. Cualquier error de parseo o codificación aborta sin
// emitir nada; la única condición recuperable es pedir una salida
// privada con una clave pública, que se marca en PrivateSkipped.
func Convert(in []byte, want Outputs) (*Result, error) {
	format, key, err := Parse(in)
	if err != nil {
		return nil, err
	}

	log := logger.Named("keyformat")
	log.Debug("clave reconocida",
		logger.Format(format.String()),
		logger.Bits(key.Bits()),
		logger.Private(key.IsPrivate()),
	)

	res := &Result{Format: format, Key: key}
	var out bytes.Buffer

	emit := func(name string, enc func(*rsakey.Key) ([]byte, error)) error {
		b, err := enc(key)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		out.Write(b)
		return nil
	}

	if want.RFC3110 {
		if err := emit("rfc3110", EncodeRFC3110); err != nil {
			return nil, err
		}
	}
	if want.PEMPublic {
		if err := emit("pem_public", EncodePEMPublic); err != nil {
			return nil, err
		}
	}
	if want.HexDER {
		if err := emit("hex_der", EncodeHexDER); err != nil {
			return nil, err
		}
	}
	if want.PEMPrivate {
		if !key.IsPrivate() {
			res.PrivateSkipped = true
		} else if err := emit("pem_private", EncodePEMPrivate); err != nil {
			return nil, err
		}
	}
	if want.Racoon {
		if !key.IsPrivate() {
			res.PrivateSkipped = true
		} else if err := emit("racoon", EncodeRacoon); err != nil {
			return nil, err
		}
	}

	if res.PrivateSkipped {
		log.Debug("salida privada omitida, la clave es pública")
	}
	res.Output = out.Bytes()
	return res, nil
}
