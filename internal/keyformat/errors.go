package keyformat

import "errors"

// Errores de formato. Los errores de codec y de material de clave
// (malformed_hex, not_private_key) viven en internal/rsakey.
var (
	// ErrInvalidPEM cubre armadura PEM rota, tipo de bloque equivocado,
	// DER que no parsea o una clave que no es RSA.
	ErrInvalidPEM = errors.New("invalid_pem")

	// ErrUnsupportedKeyLength marca material RFC 3110 cuyo exponente no
	// se puede expresar con la longitud de un byte.
	ErrUnsupportedKeyLength = errors.New("unsupported_key_length")

	// ErrUnrecognizedFormat indica que ningún detector reconoció la
	// entrada, o que el cuerpo del formato detectado está corrupto.
	ErrUnrecognizedFormat = errors.New("unrecognized_key_format")
)

// MissingFieldError indica que a un bloque racoon le falta uno de los
// campos requeridos.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing_field: " + e.Field
}
