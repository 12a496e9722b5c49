package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/interface/dto/request"
	"github.com/ChosunOne/treasury-sub000/internal/interface/dto/response"
	"github.com/ChosunOne/treasury-sub000/internal/interface/middleware"
	"github.com/ChosunOne/treasury-sub000/internal/interface/presenter"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/account"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
)

// AccountHandler は口座関連のHTTPハンドラーです
// サービスはリクエストごとに解決済み権限へ束縛して構築される
type AccountHandler struct {
	factory *account.ServiceFactory
	cursors *cursor.Codec
}

// NewAccountHandler は新しいAccountHandlerを作成します
func NewAccountHandler(factory *account.ServiceFactory, cursors *cursor.Codec) *AccountHandler {
	return &AccountHandler{
		factory: factory,
		cursors: cursors,
	}
}

// Get は口座を取得します
// GET /accounts/:id
func (h *AccountHandler) Get(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid account id")
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

	return presenter.OK(c, response.NewAccountResponse(found))
}

// List は口座一覧を取得します
// GET /accounts
func (h *AccountHandler) List(c echo.Context) error {
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

	accounts, total, err := svc.GetList(ctx, params.Offset, params.PerPage)
	if err != nil {
		return err
	}

	pagination, err := buildPagination(c, h.cursors, params, total)
	if err != nil {
		return err
	}

	return presenter.List(c, response.NewAccountListResponse(accounts), pagination)
}

// Create は口座を作成します
// POST /accounts
func (h *AccountHandler) Create(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	var req request.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ownerID := subject.ID
	if req.OwnerID != nil {
		ownerID, err = uuid.Parse(*req.OwnerID)
		if err != nil {
			return apperror.NewInvalidRequestError("invalid owner id")
		}
	}
	institutionID, err := uuid.Parse(req.InstitutionID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid institution id")
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	created, err := svc.Create(ctx, entity.NewAccount(
		ownerID,
		institutionID,
		req.Name,
		valueobject.AccountType(req.Type),
		valueobject.Currency(req.Currency),
	))
	if err != nil {
		return err
	}

	return presenter.Created(c, response.NewAccountResponse(created))
}

// Update は口座を更新します
// PATCH /accounts/:id
func (h *AccountHandler) Update(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid account id")
	}

	var req request.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := account.Patch{Name: req.Name}
	if req.Type != nil {
		accountType := valueobject.AccountType(*req.Type)
		patch.Type = &accountType
	}
	if req.InstitutionID != nil {
		institutionID, err := uuid.Parse(*req.InstitutionID)
		if err != nil {
			return apperror.NewInvalidRequestError("invalid institution id")
		}
		patch.InstitutionID = &institutionID
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

	return presenter.OK(c, response.NewAccountResponse(updated))
}

// Delete は口座を削除します
// DELETE /accounts/:id
func (h *AccountHandler) Delete(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid account id")
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

	return presenter.Deleted(c, response.NewAccountResponse(deleted))
}
