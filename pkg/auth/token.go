package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/config"
)

// TokenTypeAccess marks bearer tokens. Refresh tokens are opaque and never JWTs.
const TokenTypeAccess = "access"

var (
	signingMethod = jwt.SigningMethodHS256

	errWrongTokenType = errors.New("token is not an access token")
	errMissingUser    = errors.New("token missing user_id")
)

// AccessTokenClaims is the payload of a storefront access token.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Type   string    `json:"typ"`
	jwt.RegisteredClaims
}

func checkConfig(cfg config.JWTConfig) error {
	switch {
	case cfg.Secret == "":
		return fmt.Errorf("jwt secret is required")
	case cfg.Issuer == "":
		return fmt.Errorf("jwt issuer is required")
	case cfg.AccessTTL <= 0:
		return fmt.Errorf("jwt access ttl must be positive")
	}
	return nil
}

// MintAccessToken issues an HS256 token for userID valid for cfg.AccessTTL from now.
func MintAccessToken(cfg config.JWTConfig, now time.Time, userID uuid.UUID) (string, error) {
	if err := checkConfig(cfg); err != nil {
		return "", err
	}
	if userID == uuid.Nil {
		return "", fmt.Errorf("user id is required")
	}

	token := jwt.NewWithClaims(signingMethod, AccessTokenClaims{
		UserID: userID,
		Type:   TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseAccessToken verifies signature, issuer, expiry and token type.
func ParseAccessToken(cfg config.JWTConfig, raw string) (*AccessTokenClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	var claims AccessTokenClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	}); err != nil {
		return nil, err
	}

	switch {
	case claims.Type != TokenTypeAccess:
		return nil, errWrongTokenType
	case claims.UserID == uuid.Nil:
		return nil, errMissingUser
	}
	return &claims, nil
}

// IsExpired reports whether a parse error was caused by an elapsed exp claim.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
