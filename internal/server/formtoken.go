package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/renz/portfolio/internal/config"
)

const (
	formTokenIssuer = "portfolio"
	formTokenField  = "form_token"
	formTokenHeader = "X-Form-Token"
)

// FormClaims are the claims carried by a contact form token.
type FormClaims struct {
	jwt.RegisteredClaims
}

// FormTokenService issues and checks the signed token embedded in the contact form.
type FormTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewFormTokenService creates a form token service with the given configuration.
func NewFormTokenService(cfg config.FormTokenConfig) *FormTokenService {
	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = time.Duration(config.DefaultFormTokenTTLMinutes) * time.Minute
	}
	return &FormTokenService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate issues a new token valid for the configured TTL.
func (s *FormTokenService) Generate() (string, error) {
	now := s.now()
	claims := &FormClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    formTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign form token: %w", err)
	}
	return tokenString, nil
}

// Validate checks the signature, issuer, and lifetime of tokenString.
func (s *FormTokenService) Validate(tokenString string) (*FormClaims, error) {
	if tokenString == "" {
		return nil, &ErrInvalidFormToken{Cause: errors.New("token is missing")}
	}

	claims := &FormClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithIssuer(formTokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, &ErrInvalidFormToken{Cause: err}
	}
	if !token.Valid {
		return nil, &ErrInvalidFormToken{Cause: errors.New("token is not valid")}
	}
	return claims, nil
}
