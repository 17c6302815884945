package infrastructure

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"board-service/internal/domain"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	issuer = "board-service"
)

type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a user id.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type JWTService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewJWTService(secretKey string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (j *JWTService) GenerateTokenPair(userID int64) (*TokenPair, error) {
	refresh, err := j.generate(userID, TokenTypeRefresh, j.refreshTTL)
	if err != nil {
		return nil, err
	}
	access, err := j.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Refresh: refresh, Access: access}, nil
}

func (j *JWTService) GenerateAccessToken(userID int64) (string, error) {
	return j.generate(userID, TokenTypeAccess, j.accessTTL)
}

func (j *JWTService) generate(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// ParseToken verifies raw and checks that it is a token of wantType.
func (j *JWTService) ParseToken(raw, wantType string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token is expired: %w", domain.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("token is invalid: %w", domain.ErrUnauthenticated)
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("token has wrong type %q: %w", claims.TokenType, domain.ErrUnauthenticated)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("token has no valid subject: %w", domain.ErrUnauthenticated)
	}
	return claims, nil
}
