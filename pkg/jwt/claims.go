package jwt

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims はアクセストークンのクレームを定義します
// トークンの発行は上流のIDプロバイダが行い、本サービスは検証のみを行う
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	SubjectID uuid.UUID `json:"sub_id"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
}
