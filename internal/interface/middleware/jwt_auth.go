package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/jwt"
	"github.com/ChosunOne/treasury-sub000/pkg/logger"
)

// JWTAuthMiddleware はJWT認証ミドルウェアを提供します
// トークンの発行は上流のアイデンティティ基盤の責務であり、
// ここでは検証とサブジェクトの抽出のみ行う
type JWTAuthMiddleware struct {
	jwtService *jwt.JWTService
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
func NewJWTAuthMiddleware(jwtService *jwt.JWTService) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{jwtService: jwtService}
}

// Authenticate は認証ミドルウェアを返します
func (m *JWTAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return apperror.NewUnauthorizedError("authorization header required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return apperror.NewUnauthorizedError("invalid authorization header format")
			}

			claims, err := m.jwtService.ValidateAccessToken(parts[1])
			if err != nil {
				return apperror.NewUnauthorizedError("invalid or expired token")
			}

			subject := authz.NewSubject(claims.SubjectID, claims.Email, claims.Roles)
			SetSubject(c, subject)

			// リクエストコンテキストにもサブジェクトIDを載せる（ログ用）
			ctx := logger.ContextWithSubjectID(c.Request().Context(), subject.ID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
