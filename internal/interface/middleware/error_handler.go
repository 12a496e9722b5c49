package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/logger"
)

// ErrorResponse はエラーレスポンス構造を定義します
type ErrorResponse struct {
	Error ErrorBody   `json:"error"`
	Meta  interface{} `json:"meta"`
}

// ErrorBody はエラー本体を定義します
type ErrorBody struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []apperror.FieldError `json:"details,omitempty"`
}

// CustomHTTPErrorHandler はカスタムエラーハンドラーです
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()

	// ポリシー解決失敗はリクエストに対して致命的な内部エラー
	// 許可側に降格せず500として返す
	if authz.IsPolicyResolutionError(err) {
		logger.Error(ctx, "policy resolution failed", "error", err.Error())
		err = apperror.NewInternalError(err)
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		response := ErrorResponse{
			Error: ErrorBody{
				Code:    string(appErr.Code),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		}

		if appErr.HTTPStatus >= 500 {
			logger.Error(ctx, "internal error", "error", appErr.Error())
		}

		_ = c.JSON(appErr.HTTPStatus, response)
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		response := ErrorResponse{
			Error: ErrorBody{
				Code:    http.StatusText(he.Code),
				Message: fmt.Sprintf("%v", he.Message),
			},
		}

		_ = c.JSON(he.Code, response)
		return
	}

	logger.Error(ctx, "unknown error", "error", err.Error())

	response := ErrorResponse{
		Error: ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	}

	_ = c.JSON(http.StatusInternalServerError, response)
}
