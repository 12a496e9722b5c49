package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// コンテキストキー
const (
	ContextKeySubject = "subject"
)

// GetSubject はコンテキストから認証済みサブジェクトを取得します
func GetSubject(c echo.Context) (authz.Subject, error) {
	if subject, ok := c.Get(ContextKeySubject).(authz.Subject); ok {
		return subject, nil
	}
	return authz.Subject{}, apperror.NewUnauthorizedError("authentication required")
}

// SetSubject はコンテキストにサブジェクトを設定します
func SetSubject(c echo.Context, subject authz.Subject) {
	c.Set(ContextKeySubject, subject)
}
