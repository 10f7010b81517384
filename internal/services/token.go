package services

import (
	"errors"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload shared with middleware.JWTAuth.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenIssuer signs HS256 session tokens.
type TokenIssuer struct {
	cfg config.AuthConfig
	now func() time.Time
}

func NewTokenIssuer(cfg config.AuthConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}
	return &TokenIssuer{cfg: cfg, now: time.Now}, nil
}

func (t *TokenIssuer) Issue(userID, role string) (string, error) {
	now := t.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TokenTTL)),
		},
		Role: role,
	}
	if t.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{t.cfg.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.cfg.Secret))
}
