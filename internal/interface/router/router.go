package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/cache"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/di"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupAPIRoutes()
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupAPIRoutes はAPIルートを設定します
// 全リソースルートは認証必須で、権限解決はサービスファクトリが行う
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api/v1",
		r.middlewares.JWTAuth.Authenticate(),
		r.middlewares.RateLimit.BySubject(cache.RateLimitAPIDefault),
	)

	write := r.middlewares.RateLimit.BySubject(cache.RateLimitAPIWrite)

	r.setupResourceRoutes(api, "/accounts", resourceHandlers{
		get:    r.handlers.Account.Get,
		list:   r.handlers.Account.List,
		create: r.handlers.Account.Create,
		update: r.handlers.Account.Update,
		delete: r.handlers.Account.Delete,
	}, write)

	r.setupResourceRoutes(api, "/assets", resourceHandlers{
		get:    r.handlers.Asset.Get,
		list:   r.handlers.Asset.List,
		create: r.handlers.Asset.Create,
		update: r.handlers.Asset.Update,
		delete: r.handlers.Asset.Delete,
	}, write)

	r.setupResourceRoutes(api, "/institutions", resourceHandlers{
		get:    r.handlers.Institution.Get,
		list:   r.handlers.Institution.List,
		create: r.handlers.Institution.Create,
		update: r.handlers.Institution.Update,
		delete: r.handlers.Institution.Delete,
	}, write)

	r.setupResourceRoutes(api, "/transactions", resourceHandlers{
		get:    r.handlers.Transaction.Get,
		list:   r.handlers.Transaction.List,
		create: r.handlers.Transaction.Create,
		update: r.handlers.Transaction.Update,
		delete: r.handlers.Transaction.Delete,
	}, write)

	// ユーザーは外部のアイデンティティ基盤で作成されるため作成ルートを持たない
	users := api.Group("/users")
	users.GET("/me", r.handlers.User.GetMe)
	users.GET("", r.handlers.User.List)
	users.GET("/:id", r.handlers.User.Get)
	users.PATCH("/:id", r.handlers.User.Update, write)
	users.DELETE("/:id", r.handlers.User.Delete, write)
}

// resourceHandlers はCRUDリソースのハンドラー群です
type resourceHandlers struct {
	get    echo.HandlerFunc
	list   echo.HandlerFunc
	create echo.HandlerFunc
	update echo.HandlerFunc
	delete echo.HandlerFunc
}

// setupResourceRoutes は単一リソースの標準CRUDルートを設定します
func (r *Router) setupResourceRoutes(api *echo.Group, prefix string, h resourceHandlers, write echo.MiddlewareFunc) {
	g := api.Group(prefix)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.POST("", h.create, write)
	g.PATCH("/:id", h.update, write)
	g.DELETE("/:id", h.delete, write)
}
