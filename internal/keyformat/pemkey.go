package keyformat

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/dropDatabas3/keyconv/internal/rsakey"
)

const (
	pemTypePublic  = "PUBLIC KEY"
	pemTypePrivate = "RSA PRIVATE KEY"
)

// parseSPKI decodifica un SubjectPublicKeyInfo en DER. Lo comparten el
// parser PEM público y el de volcado hex, que llevan la misma estructura
// con distinta envoltura.
func parseSPKI(der []byte) (*rsakey.Key, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: la clave no es RSA (%T)", ErrInvalidPEM, pub)
	}
	return rsakey.FromRSAPublic(rsaPub), nil
}

// ParsePEMPublic lee un bloque PEM "PUBLIC KEY" (SubjectPublicKeyInfo).
func ParsePEMPublic(block []byte) (*rsakey.Key, error) {
	p, _ := pem.Decode(block)
	if p == nil || p.Type != pemTypePublic {
		return nil, fmt.Errorf("%w: bloque %q inválido", ErrInvalidPEM, pemTypePublic)
	}
	return parseSPKI(p.Bytes)
}

// EncodePEMPublic emite la parte pública como PEM SubjectPublicKeyInfo.
func EncodePEMPublic(k *rsakey.Key) ([]byte, error) {
	pub, err := k.PublicKey()
	if err != nil {
		return nil, err
	}
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, fmt.Errorf("marshal spki: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der}), nil
}

// ParsePEMPrivate lee un bloque PEM "RSA PRIVATE KEY" (PKCS#1). Los
// parámetros CRT se rederivan de d, p y q.
func ParsePEMPrivate(block []byte) (*rsakey.Key, error) {
	p, _ := pem.Decode(block)
	if p == nil || p.Type != pemTypePrivate {
		return nil, fmt.Errorf("%w: bloque %q inválido", ErrInvalidPEM, pemTypePrivate)
	}
	priv, err := x509.ParsePKCS1PrivateKey(p.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	k, err := rsakey.FromRSAPrivate(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPEM, err)
	}
	return k, nil
}

// EncodePEMPrivate emite la clave como PEM PKCS#1. Requiere material
// privado.
func EncodePEMPrivate(k *rsakey.Key) ([]byte, error) {
	priv, err := k.PrivateKey()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePrivate, Bytes: x509.MarshalPKCS1PrivateKey(priv)}), nil
}
