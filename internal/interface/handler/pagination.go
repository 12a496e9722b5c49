package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ChosunOne/treasury-sub000/internal/interface/presenter"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/pkg/cursor"
)

// listParams は一覧取得の正規化済みパラメータです
type listParams struct {
	Page    int
	PerPage int
	Offset  int
}

// parseListParams はページネーションパラメータを解析します
// cursorパラメータがあれば署名検証のうえオフセットとして採用し、
// なければpage/per_pageから計算する
func parseListParams(c echo.Context, cursors *cursor.Codec) (listParams, error) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	page, perPage = presenter.NormalizePagination(page, perPage)

	offset := presenter.Offset(page, perPage)

	if token := c.QueryParam("cursor"); token != "" {
		decoded, err := cursors.Decode(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, cursor.ErrInvalidCursor) {
				return listParams{}, apperror.NewInvalidRequestError("invalid cursor")
			}
			return listParams{}, err
		}
		offset = decoded
		page = offset/perPage + 1
	}

	return listParams{Page: page, PerPage: perPage, Offset: offset}, nil
}

// buildPagination はページネーションメタ情報を構築します
// 続きがある場合は次ページのカーソルを署名して含める
func buildPagination(c echo.Context, cursors *cursor.Codec, params listParams, totalItems int) (*presenter.Pagination, error) {
	pagination := presenter.NewPagination(params.Page, params.PerPage, totalItems)

	if params.Offset+params.PerPage < totalItems {
		next, err := cursors.Encode(c.Request().Context(), params.Offset+params.PerPage)
		if err != nil {
			return nil, err
		}
		pagination.NextCursor = next
	}

	return pagination, nil
}
