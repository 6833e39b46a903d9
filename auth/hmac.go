package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by locally signed development tokens.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// HMACVerifier validates locally signed HS256 tokens. Used when no identity
// provider credentials are configured (local development) and in tests.
type HMACVerifier struct {
	Secret string
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{Secret: secret}
}

func (v *HMACVerifier) Verify(_ context.Context, tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(v.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UID == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UID: claims.UID, Email: claims.Email}, nil
}

// SignToken issues a development token for the given identity.
func SignToken(uid, email, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UID:   uid,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
