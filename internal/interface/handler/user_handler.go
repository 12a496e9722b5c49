package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/interface/dto/request"
	"github.com/ChosunOne/treasury-sub000/internal/interface/dto/response"
	"github.com/ChosunOne/treasury-sub000/internal/interface/middleware"
	"github.com/ChosunOne/treasury-sub000/internal/interface/presenter"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/user"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
)

// UserHandler はユーザー関連のHTTPハンドラーです
// ユーザーの作成は外部のアイデンティティ基盤が行うため作成ルートは持たない
type UserHandler struct {
	factory *user.ServiceFactory
	cursors *cursor.Codec
}

// NewUserHandler は新しいUserHandlerを作成します
func NewUserHandler(factory *user.ServiceFactory, cursors *cursor.Codec) *UserHandler {
	return &UserHandler{
		factory: factory,
		cursors: cursors,
	}
}

// Get はユーザーを取得します
// GET /users/:id
func (h *UserHandler) Get(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid user id")
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	found, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewUserResponse(found))
}

// GetMe は認証中のユーザー自身を取得します
// GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	found, err := svc.Get(ctx, subject.ID)
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewUserResponse(found))
}

// List はユーザー一覧を取得します
// GET /users
func (h *UserHandler) List(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	params, err := parseListParams(c, h.cursors)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	users, total, err := svc.GetList(ctx, params.Offset, params.PerPage)
	if err != nil {
		return err
	}

	pagination, err := buildPagination(c, h.cursors, params, total)
	if err != nil {
		return err
	}

	return presenter.List(c, response.NewUserListResponse(users), pagination)
}

// Update はユーザーを更新します
// PATCH /users/:id
func (h *UserHandler) Update(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid user id")
	}

	var req request.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := user.Patch{Name: req.Name}
	if req.Status != nil {
		status := entity.UserStatus(*req.Status)
		patch.Status = &status
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	updated, err := svc.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	return presenter.OK(c, response.NewUserResponse(updated))
}

// Delete はユーザーを削除します
// DELETE /users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid user id")
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	deleted, err := svc.Delete(ctx, id)
	if err != nil {
		return err
	}

	return presenter.Deleted(c, response.NewUserResponse(deleted))
}
