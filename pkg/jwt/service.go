package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService はJWT操作を提供します
type JWTService struct {
	config Config
}

// NewJWTService は新しいJWTServiceを作成します
func NewJWTService(cfg Config) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateAccessToken はアクセストークンを生成します
// 本番では上流のIDプロバイダが発行するが、開発環境とテストで使用する
func (s *JWTService) GenerateAccessToken(subjectID uuid.UUID, email string, roles []string) (string, error) {
	now := time.Now()

	claims := AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   subjectID.String(),
			Audience:  s.config.Audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		SubjectID: subjectID,
		Email:     email,
		Roles:     roles,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, nil
}

// ValidateAccessToken はアクセストークンを検証します
func (s *JWTService) ValidateAccessToken(tokenString string) (*AccessTokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSigningMethod, token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	claims, ok := token.Claims.(*AccessTokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetAccessTokenExpiry はアクセストークンの有効期限を返します
func (s *JWTService) GetAccessTokenExpiry() time.Duration {
	return s.config.AccessTokenExpiry
}
