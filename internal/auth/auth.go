// Package auth выдаёт и проверяет токены доступа и хэширует пароли.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer          = "secondbrain"
	DefaultTokenTTL = 24 * time.Hour
)

var (
	// ErrInvalidToken токен не прошёл проверку подписи или формата.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

// Claims полезная нагрузка токена. Subject содержит ID пользователя.
type Claims struct {
	jwt.RegisteredClaims
}

// Auth подписывает токены HS256.
type Auth struct {
	SecretKey []byte
	TTL       time.Duration
	now       func() time.Time
}

func New(secret string, ttl time.Duration) *Auth {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Auth{SecretKey: []byte(secret), TTL: ttl, now: time.Now}
}

// Issue создаёт токен для пользователя.
func (a *Auth) Issue(userID string) (string, time.Time, error) {
	now := a.clock()
	expires := now.Add(a.TTL)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.SecretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expires, nil
}

func (a *Auth) clock() time.Time {
	if a.now == nil {
		return time.Now()
	}
	return a.now()
}

// Verify проверяет подпись, алгоритм и срок действия, возвращает ID пользователя.
func (a *Auth) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return a.SecretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.clock),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
