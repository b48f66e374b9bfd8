package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Professional identifies who is running an evaluation. The triple is carried
// in the token and stamped onto every session the holder opens.
type Professional struct {
	Name        string `json:"name"`
	Profession  string `json:"profession"`
	Institution string `json:"institution"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profession  string `json:"profession,omitempty"`
	Institution string `json:"institution,omitempty"`
}

type JWTConfig struct {
	Issuer     string
	Audience   string
	SigningKey []byte
	TTL        time.Duration
}

// IssueToken mints an HS256 token for the professional. Each token carries a
// unique JTI so a logout can revoke it individually.
func IssueToken(cfg JWTConfig, p Professional) (string, *Claims, error) {
	if len(cfg.SigningKey) == 0 {
		return "", nil, fmt.Errorf("signing key is not configured")
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.Name,
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
		Profession:  p.Profession,
		Institution: p.Institution,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cfg.SigningKey)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}
	return signed, claims, nil
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(cfg JWTConfig, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return cfg.SigningKey, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
