package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	ID      uint   `json:"id"`
	LoginID string `json:"loginId"`
	Role    Role   `json:"role"`
	jwt.RegisteredClaims
}

type Token struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   string `json:"expiresIn"`
}

type TokenIssuer struct {
	secret    []byte
	ttl       time.Duration
	expiresIn string
	now       func() time.Time
}

// NewTokenIssuer signs HS256 tokens. expiresIn is echoed back to clients
// as configured ("24h", "7d").
func NewTokenIssuer(secret string, ttl time.Duration, expiresIn string) *TokenIssuer {
	return &TokenIssuer{
		secret:    []byte(secret),
		ttl:       ttl,
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (i *TokenIssuer) Issue(p Principal) (Token, error) {
	now := i.now()
	claims := Claims{
		ID:      p.ID,
		LoginID: p.LoginID,
		Role:    p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%s:%d", p.Role, p.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}

	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   i.expiresIn,
	}, nil
}

func (i *TokenIssuer) Parse(raw string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	if claims.ID == 0 || !claims.Role.Valid() {
		return Principal{}, ErrInvalidToken
	}

	return Principal{
		ID:      claims.ID,
		LoginID: claims.LoginID,
		Role:    claims.Role,
	}, nil
}
