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
	"github.com/ChosunOne/treasury-sub000/internal/usecase/transaction"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
)

// TransactionHandler は取引関連のHTTPハンドラーです
type TransactionHandler struct {
	factory *transaction.ServiceFactory
	cursors *cursor.Codec
}

// NewTransactionHandler は新しいTransactionHandlerを作成します
func NewTransactionHandler(factory *transaction.ServiceFactory, cursors *cursor.Codec) *TransactionHandler {
	return &TransactionHandler{
		factory: factory,
		cursors: cursors,
	}
}

// Get は取引を取得します
// GET /transactions/:id
func (h *TransactionHandler) Get(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid transaction id")
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

	return presenter.OK(c, response.NewTransactionResponse(found))
}

// List は取引一覧を取得します
// GET /transactions
func (h *TransactionHandler) List(c echo.Context) error {
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

	transactions, total, err := svc.GetList(ctx, params.Offset, params.PerPage)
	if err != nil {
		return err
	}

	pagination, err := buildPagination(c, h.cursors, params, total)
	if err != nil {
		return err
	}

	return presenter.List(c, response.NewTransactionListResponse(transactions), pagination)
}

// Create は取引を記帳します
// POST /transactions
func (h *TransactionHandler) Create(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	var req request.CreateTransactionRequest
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
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return apperror.NewInvalidRequestError("invalid account id")
	}
	var assetID *uuid.UUID
	if req.AssetID != nil {
		parsed, err := uuid.Parse(*req.AssetID)
		if err != nil {
			return apperror.NewInvalidRequestError("invalid asset id")
		}
		assetID = &parsed
	}
	amount, err := valueobject.NewMoney(req.Amount, valueobject.Currency(req.Currency))
	if err != nil {
		return apperror.NewInvalidRequestError(err.Error())
	}

	tx, err := entity.NewTransaction(
		ownerID,
		accountID,
		assetID,
		valueobject.TransactionKind(req.Kind),
		amount,
		req.Quantity,
		req.Description,
		req.OccurredAt,
	)
	if err != nil {
		return apperror.NewInvalidRequestError(err.Error())
	}

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	created, err := svc.Create(ctx, tx)
	if err != nil {
		return err
	}

	return presenter.Created(c, response.NewTransactionResponse(created))
}

// Update は取引を修正します
// PATCH /transactions/:id
func (h *TransactionHandler) Update(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid transaction id")
	}

	var req request.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := transaction.Patch{
		Quantity:    req.Quantity,
		Description: req.Description,
		OccurredAt:  req.OccurredAt,
	}
	if req.Amount != nil {
		amount, err := valueobject.NewMoney(*req.Amount, valueobject.Currency(*req.Currency))
		if err != nil {
			return apperror.NewInvalidRequestError(err.Error())
		}
		patch.Amount = &amount
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

	return presenter.OK(c, response.NewTransactionResponse(updated))
}

// Delete は取引を削除します
// DELETE /transactions/:id
func (h *TransactionHandler) Delete(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid transaction id")
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

	return presenter.Deleted(c, response.NewTransactionResponse(deleted))
}
