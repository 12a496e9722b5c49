package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/pkg/logger"
)

// HealthChecker は依存コンポーネントの疎通確認インターフェースです
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler はヘルスチェックのHTTPハンドラーです
type HealthHandler struct {
	checkers map[string]HealthChecker
}

// NewHealthHandler は新しいHealthHandlerを作成します
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers: make(map[string]HealthChecker),
	}
}

// RegisterChecker は疎通確認対象のコンポーネントを登録します
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// Check はプロセスの生存確認を返します
// GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Ready は依存コンポーネントすべての疎通を確認します
// GET /ready
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string, len(h.checkers))
	healthy := true
	for name, checker := range h.checkers {
		if err := checker.Health(ctx); err != nil {
			logger.Error(ctx, "readiness check failed",
				"component", name,
				"error", err,
			)
			components[name] = "unavailable"
			healthy = false
			continue
		}
		components[name] = "ok"
	}

	status := http.StatusOK
	body := map[string]any{
		"status":     "ready",
		"components": components,
	}
	if !healthy {
		status = http.StatusServiceUnavailable
		body["status"] = "not_ready"
	}
	return c.JSON(status, body)
}
