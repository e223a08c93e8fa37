package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"nightmap/config"
	"nightmap/internal/domain/service"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using HS256.
// Access and refresh tokens are signed with separate secrets.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets are not configured")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		issuer:        cfg.Env.ServiceName,
	}, nil
}

// GenerateTokens creates a signed access and refresh token pair for the account.
func (s *jwtService) GenerateTokens(accountID uint64, roles []string) (string, string, error) {
	accessToken, err := s.signToken(accountID, roles, tokenTypeAccess, accessTokenDuration, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.signToken(accountID, roles, tokenTypeRefresh, refreshTokenDuration, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign refresh token")
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) signToken(accountID uint64, roles []string, tokenType string, duration time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		Roles:     roles,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateAccessToken parses and verifies an access token string.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, tokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken parses and verifies a refresh token string.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, tokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) validateToken(tokenString, expectedType string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Type != expectedType {
		return nil, errors.Errorf("token type mismatch: expected %s", expectedType)
	}

	return claims, nil
}

// HashToken returns the SHA-256 hex digest under which a refresh token is stored.
// Storing only the digest keeps raw tokens out of the database.
func (s *jwtService) HashToken(tokenString string) string {
	digest := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(digest[:])
}

// GetRefreshTokenDuration returns the refresh token lifetime.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return refreshTokenDuration
}
