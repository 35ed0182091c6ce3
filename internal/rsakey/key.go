package rsakey

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrNotPrivate indica que la operación requiere material privado y la
// clave solo tiene la parte pública.
var ErrNotPrivate = errors.New("not_private_key")

// Key es el modelo canónico de una clave RSA: N y E siempre presentes,
// los componentes privados (D, P, Q, Dp, Dq, Qinv) todos juntos o ninguno.
// Todos los enteros se interpretan sin signo, big-endian.
type Key struct {
	N *big.Int
	E *big.Int

	D    *big.Int
	P    *big.Int
	Q    *big.Int
	Dp   *big.Int
	Dq   *big.Int
	Qinv *big.Int
}

// FromPublic arma una clave pública a partir de módulo y exponente.
func FromPublic(n, e *big.Int) (*Key, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, errors.New("módulo ausente o no positivo")
	}
	if e == nil || e.Sign() <= 0 {
		return nil, errors.New("exponente público ausente o no positivo")
	}
	return &Key{N: n, E: e}, nil
}

// FromPrivate arma una clave privada a partir de los cinco componentes
// base y deriva los parámetros CRT:
//
//	dP   = d mod (p-1)
//	dQ   = d mod (q-1)
//	qInv = q^-1 mod p
//
// La consistencia aritmética entre n, d, p y q se asume, no se verifica.
func FromPrivate(n, e, d, p, q *big.Int) (*Key, error) {
	k, err := FromPublic(n, e)
	if err != nil {
		return nil, err
	}
	if d == nil || d.Sign() <= 0 {
		return nil, errors.New("exponente privado ausente o no positivo")
	}
	one := big.NewInt(1)
	if p == nil || p.Cmp(one) <= 0 || q == nil || q.Cmp(one) <= 0 {
		return nil, errors.New("primos ausentes o fuera de rango")
	}

	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	qinv := new(big.Int).ModInverse(q, p)
	if qinv == nil {
		return nil, errors.New("q no es invertible módulo p")
	}

	k.D = d
	k.P = p
	k.Q = q
	k.Dp = new(big.Int).Mod(d, pm1)
	k.Dq = new(big.Int).Mod(d, qm1)
	k.Qinv = qinv
	return k, nil
}

// FromRSAPublic adapta una clave pública de crypto/rsa.
func FromRSAPublic(pub *rsa.PublicKey) *Key {
	return &Key{N: pub.N, E: big.NewInt(int64(pub.E))}
}

// FromRSAPrivate adapta una clave privada de crypto/rsa. Los parámetros
// CRT se derivan siempre de d, p y q; los precomputados del caller se
// ignoran.
func FromRSAPrivate(priv *rsa.PrivateKey) (*Key, error) {
	if len(priv.Primes) != 2 {
		return nil, fmt.Errorf("clave de %d primos no soportada", len(priv.Primes))
	}
	return FromPrivate(priv.N, big.NewInt(int64(priv.E)), priv.D, priv.Primes[0], priv.Primes[1])
}

// IsPrivate reporta si la clave incluye el material privado completo.
func (k *Key) IsPrivate() bool {
	return k.D != nil && k.P != nil && k.Q != nil &&
		k.Dp != nil && k.Dq != nil && k.Qinv != nil
}

// Bits es el tamaño de la clave derivado del largo en bytes del módulo.
func (k *Key) Bits() int {
	return len(k.N.Bytes()) * 8
}

// PublicKey convierte al tipo de crypto/rsa. Falla si el exponente no
// entra en un int de la plataforma (límite de crypto/x509).
func (k *Key) PublicKey() (*rsa.PublicKey, error) {
	if !k.E.IsInt64() || k.E.Int64() > int64(math.MaxInt) {
		return nil, fmt.Errorf("exponente público de %d bytes excede el int de plataforma", len(k.E.Bytes()))
	}
	return &rsa.PublicKey{N: k.N, E: int(k.E.Int64())}, nil
}

// PrivateKey convierte al tipo de crypto/rsa, con los parámetros CRT ya
// poblados para que el marshal PKCS#1 los emita tal cual.
func (k *Key) PrivateKey() (*rsa.PrivateKey, error) {
	if !k.IsPrivate() {
		return nil, ErrNotPrivate
	}
	pub, err := k.PublicKey()
	if err != nil {
		return nil, err
	}
	return &rsa.PrivateKey{
		PublicKey: *pub,
		D:         k.D,
		Primes:    []*big.Int{k.P, k.Q},
		Precomputed: rsa.PrecomputedValues{
			Dp:   k.Dp,
			Dq:   k.Dq,
			Qinv: k.Qinv,
		},
	}, nil
}
