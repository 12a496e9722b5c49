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
	"github.com/ChosunOne/treasury-sub000/internal/usecase/asset"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
)

// AssetHandler は資産関連のHTTPハンドラーです
type AssetHandler struct {
	factory *asset.ServiceFactory
	cursors *cursor.Codec
}

// NewAssetHandler は新しいAssetHandlerを作成します
func NewAssetHandler(factory *asset.ServiceFactory, cursors *cursor.Codec) *AssetHandler {
	return &AssetHandler{
		factory: factory,
		cursors: cursors,
	}
}

// Get は資産を取得します
// GET /assets/:id
func (h *AssetHandler) Get(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid asset id")
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

	return presenter.OK(c, response.NewAssetResponse(found))
}

// List は資産一覧を取得します
// GET /assets
func (h *AssetHandler) List(c echo.Context) error {
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

	assets, total, err := svc.GetList(ctx, params.Offset, params.PerPage)
	if err != nil {
		return err
	}

	pagination, err := buildPagination(c, h.cursors, params, total)
	if err != nil {
		return err
	}

	return presenter.List(c, response.NewAssetListResponse(assets), pagination)
}

// Create は資産を作成します
// POST /assets
func (h *AssetHandler) Create(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	var req request.CreateAssetRequest
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

	ctx := c.Request().Context()
	svc, err := h.factory.ServiceFor(ctx, subject)
	if err != nil {
		return err
	}

	created, err := svc.Create(ctx, entity.NewAsset(
		ownerID,
		req.Symbol,
		req.Name,
		valueobject.AssetClass(req.Class),
		valueobject.Currency(req.Currency),
	))
	if err != nil {
		return err
	}

	return presenter.Created(c, response.NewAssetResponse(created))
}

// Update は資産を更新します
// PATCH /assets/:id
func (h *AssetHandler) Update(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid asset id")
	}

	var req request.UpdateAssetRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := asset.Patch{Name: req.Name}
	if req.Class != nil {
		class := valueobject.AssetClass(*req.Class)
		patch.Class = &class
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

	return presenter.OK(c, response.NewAssetResponse(updated))
}

// Delete は資産を削除します
// DELETE /assets/:id
func (h *AssetHandler) Delete(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid asset id")
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

	return presenter.Deleted(c, response.NewAssetResponse(deleted))
}
