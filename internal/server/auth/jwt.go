// Package auth issues and verifies the signed, time-limited identity tokens
// handed out at signup and login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the standard registered claims plus the
// user's id and name.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
}

// Identity is what a verified token asserts about its bearer.
type Identity struct {
	UserID   string
	Username string
}

// Issuer signs and verifies tokens with a single HMAC secret.
type Issuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewIssuer returns an Issuer whose tokens live for validity.
func NewIssuer(secretKey []byte, validity time.Duration) *Issuer {
	return &Issuer{secret: secretKey, validity: validity, now: time.Now}
}

// WithClock replaces the time source. Tests use it to move past expiry.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue returns a signed token for the user.
func (i *Issuer) Issue(userID, username string) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		UserID:   userID,
		Username: username,
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify checks the signature and expiry of tokenString. Failures are one
// of common.ErrTokenExpired, common.ErrTokenMalformed or
// common.ErrTokenSignatureInvalid. The signature is checked before the
// claims, so only a correctly signed but stale token reports Expired.
func (i *Issuer) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Identity{}, classify(err)
	}

	if claims.UserID == "" {
		return Identity{}, common.ErrTokenMalformed
	}

	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return common.ErrTokenSignatureInvalid
	default:
		return common.ErrTokenMalformed
	}
}
