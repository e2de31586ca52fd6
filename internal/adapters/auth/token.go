package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"concertify/internal/domain"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type jwtCodec struct {
	secret []byte
}

// NewJWTCodec returns a TokenIssuer/TokenVerifier pair backed by HS256 JWTs
// signed with the given secret. The same value goes into the session cookie
// and the Authorization header.
func NewJWTCodec(secret string) *jwtCodec {
	return &jwtCodec{secret: []byte(secret)}
}

var (
	_ domain.TokenIssuer   = (*jwtCodec)(nil)
	_ domain.TokenVerifier = (*jwtCodec)(nil)
)

func (c *jwtCodec) Issue(userID, email string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (c *jwtCodec) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}
