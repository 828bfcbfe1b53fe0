// Package token issues and verifies the bearer tokens shared by all
// services. Every service is constructed with the same signing secret and
// verifies tokens on its own; there is no central introspection endpoint.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is returned by Verify for any token that cannot be trusted:
// bad signature, malformed structure, wrong algorithm or past expiry.
// Callers must treat it uniformly as "unauthenticated".
var ErrInvalid = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
}

// Codec is a stateless issuer/verifier bound to one shared secret and TTL.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock returns a copy of the codec using the given clock. Tests use it
// to simulate expiry without sleeping.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	cp := *c
	cp.now = now
	return &cp
}

// Issue signs a token asserting subject, valid from now for the codec's TTL.
func (c *Codec) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token: empty subject")
	}
	now := c.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded subject.
// Any failure is reported as ErrInvalid; the underlying parse error is
// wrapped so logs can tell an expired token from a tampered one.
func (c *Codec) Verify(raw string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", errors.Join(ErrInvalid, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
