// Package authtoken issues and verifies HS256 bearer tokens carrying
// {user_id, email, exp} claims.
package authtoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/swarm-blackjack/tablecore/internal/apierrors"
)

// Claims carries {user_id, email, exp}. Tokens authenticate a user, not a
// specific game — one token is valid across every game they join.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret     []byte
	expiration time.Duration
}

func NewIssuer(secret string, expiration time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), expiration: expiration}
}

// Issue returns a signed token string and its expiration instant.
func (i *Issuer) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(i.expiration)
	claims := Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, apierrors.ErrInternal
	}
	return signed, expiresAt, nil
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify decodes and validates tokenString, enforcing signature and
// expiration. An empty tokenString means "anonymous" — callers should check
// for that before calling Verify, since Verify itself treats any non-empty,
// invalid token as a hard failure rather than anonymous access.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	if err != nil || !token.Valid {
		return nil, apierrors.ErrUnauthorized
	}

	return claims, nil
}
