package adapters

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

const (
	accessTokenDuration  = 12 * time.Hour
	refreshTokenDuration = 30 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "shop-khata"
)

// sessionClaims represents the claims carried by session tokens. There are
// no per-user accounts; a valid token simply proves the PIN was entered.
type sessionClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface. Tokens are
// stateless; nothing is stored server side.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
	}
}

// GeneratePair issues a fresh access and refresh token pair.
func (s *tokenService) GeneratePair() (*adapter.TokenPair, error) {
	now := time.Now().UTC()
	accessExpires := now.Add(accessTokenDuration)
	refreshExpires := now.Add(refreshTokenDuration)

	accessToken, err := s.generateJWT(tokenTypeAccess, now, accessExpires)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateJWT(tokenTypeRefresh, now, refreshExpires)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpires,
		RefreshExpiresAt: refreshExpires,
	}, nil
}

// ValidateAccess checks an access token.
func (s *tokenService) ValidateAccess(token string) error {
	claims, err := s.parseJWT(token)
	if err != nil {
		return err
	}
	if claims.TokenType != tokenTypeAccess {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"expected an access token",
			domainerror.ErrInvalidToken,
		)
	}
	return nil
}

// Refresh validates a refresh token and issues a new pair.
func (s *tokenService) Refresh(refreshToken string) (*adapter.TokenPair, error) {
	claims, err := s.parseJWT(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"expected a refresh token",
			domainerror.ErrInvalidToken,
		)
	}
	return s.GeneratePair()
}

// generateJWT creates a signed token of the given type.
func (s *tokenService) generateJWT(tokenType string, now, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a token.
func (s *tokenService) parseJWT(tokenString string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeTokenExpired,
				"token expired",
				domainerror.ErrTokenExpired,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"failed to parse token",
			domainerror.ErrInvalidToken,
		)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	return claims, nil
}
