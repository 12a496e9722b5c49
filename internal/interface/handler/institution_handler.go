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
	"github.com/ChosunOne/treasury-sub000/internal/usecase/institution"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
)

// InstitutionHandler は金融機関関連のHTTPハンドラーです
type InstitutionHandler struct {
	factory *institution.ServiceFactory
	cursors *cursor.Codec
}

// NewInstitutionHandler は新しいInstitutionHandlerを作成します
func NewInstitutionHandler(factory *institution.ServiceFactory, cursors *cursor.Codec) *InstitutionHandler {
	return &InstitutionHandler{
		factory: factory,
		cursors: cursors,
	}
}

// Get は金融機関を取得します
// GET /institutions/:id
func (h *InstitutionHandler) Get(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid institution id")
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

	return presenter.OK(c, response.NewInstitutionResponse(found))
}

// List は金融機関一覧を取得します
// GET /institutions
func (h *InstitutionHandler) List(c echo.Context) error {
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

	institutions, total, err := svc.GetList(ctx, params.Offset, params.PerPage)
	if err != nil {
		return err
	}

	pagination, err := buildPagination(c, h.cursors, params, total)
	if err != nil {
		return err
	}

	return presenter.List(c, response.NewInstitutionListResponse(institutions), pagination)
}

// Create は金融機関を作成します
// POST /institutions
func (h *InstitutionHandler) Create(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	var req request.CreateInstitutionRequest
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

	created, err := svc.Create(ctx, entity.NewInstitution(
		ownerID,
		req.Name,
		valueobject.InstitutionKind(req.Kind),
		req.Country,
	))
	if err != nil {
		return err
	}

	return presenter.Created(c, response.NewInstitutionResponse(created))
}

// Update は金融機関を更新します
// PATCH /institutions/:id
func (h *InstitutionHandler) Update(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid institution id")
	}

	var req request.UpdateInstitutionRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewValidationError("invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := institution.Patch{
		Name:    req.Name,
		Country: req.Country,
	}
	if req.Kind != nil {
		kind := valueobject.InstitutionKind(*req.Kind)
		patch.Kind = &kind
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

	return presenter.OK(c, response.NewInstitutionResponse(updated))
}

// Delete は金融機関を削除します
// DELETE /institutions/:id
func (h *InstitutionHandler) Delete(c echo.Context) error {
	subject, err := middleware.GetSubject(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperror.NewInvalidRequestError("invalid institution id")
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

	return presenter.Deleted(c, response.NewInstitutionResponse(deleted))
}
