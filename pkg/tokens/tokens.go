package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid access token")

// AccessClaims carries only registered claims: the subject is the
// username of the authenticated principal.
type AccessClaims struct {
	jwt.RegisteredClaims
}

func NewAccessToken(subject string, exp time.Time, method jwt.SigningMethod, secret []byte) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        NewJTI(),
		},
	}

	return jwt.NewWithClaims(method, claims).SignedString(secret)
}

// AccessClaimsFromToken verifies the signature, the signing method and
// the expiry, and requires a non-empty subject claim.
func AccessClaimsFromToken(tokenStr string, method jwt.SigningMethod, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func NewJTI() string { return uuid.NewString() }
