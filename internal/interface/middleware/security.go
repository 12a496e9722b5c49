package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeadersConfig はセキュリティヘッダー設定を定義します
type SecurityHeadersConfig struct {
	EnableHSTS    bool
	CSPDirectives string
}

// DefaultSecurityHeadersConfig はデフォルトセキュリティヘッダー設定を返します
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		EnableHSTS:    false,
		CSPDirectives: "default-src 'self'",
	}
}

// SecurityHeaders はセキュリティヘッダーを設定するミドルウェアを返します
func SecurityHeaders() echo.MiddlewareFunc {
	return SecurityHeadersWithConfig(DefaultSecurityHeadersConfig())
}

// SecurityHeadersWithConfig は設定付きセキュリティヘッダーミドルウェアを返します
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()

			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("Content-Security-Policy", cfg.CSPDirectives)
			header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			header.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			// HTTPS強制（本番環境）
			if cfg.EnableHSTS {
				header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			return next(c)
		}
	}
}
