package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/cache"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// setRateLimitHeaders はレート制限ヘッダーを設定します
func setRateLimitHeaders(c echo.Context, result *cache.RateLimitResult) {
	c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Response().Header().Set("X-RateLimit-Reset", result.ResetAt.Format(time.RFC3339))
}

// RateLimitMiddleware はレート制限ミドルウェアを提供します
type RateLimitMiddleware struct {
	limiter *cache.RateLimiter
}

// NewRateLimitMiddleware は新しいRateLimitMiddlewareを作成します
func NewRateLimitMiddleware(limiter *cache.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// ByIP はIPアドレスでレート制限するミドルウェアを返します
func (m *RateLimitMiddleware) ByIP(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return m.limit(config, func(c echo.Context) string {
		return c.RealIP()
	})
}

// BySubject は認証済みサブジェクトでレート制限するミドルウェアを返します
// 未認証の場合はIPでフォールバックする
func (m *RateLimitMiddleware) BySubject(config cache.RateLimitConfig) echo.MiddlewareFunc {
	return m.limit(config, func(c echo.Context) string {
		if subject, err := GetSubject(c); err == nil {
			return subject.ID.String()
		}
		return c.RealIP()
	})
}

func (m *RateLimitMiddleware) limit(config cache.RateLimitConfig, identify func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			result, err := m.limiter.Allow(c.Request().Context(), identify(c), config)
			if err != nil {
				// レート制限チェックに失敗した場合はリクエストを許可
				return next(c)
			}

			setRateLimitHeaders(c, result)

			if !result.Allowed {
				return apperror.NewTooManyRequestsError("rate limit exceeded")
			}

			return next(c)
		}
	}
}
