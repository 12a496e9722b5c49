package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/database"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

const assetColumns = "id, owner_id, symbol, name, asset_class, currency, created_at, updated_at"

// AssetRepository は資産リポジトリの実装です
type AssetRepository struct {
	*database.BaseRepository
}

// NewAssetRepository は新しいAssetRepositoryを作成します
func NewAssetRepository(txManager *database.TxManager) *AssetRepository {
	return &AssetRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// FindByID はIDで資産を検索します
func (r *AssetRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Asset, error) {
	query := "SELECT " + assetColumns + " FROM assets WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	asset, err := scanAsset(row)
	if err != nil {
		return nil, r.HandleError(err, "asset")
	}
	return asset, nil
}

// List は資産の一覧と総件数を返します
func (r *AssetRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Asset, int, error) {
	where := ""
	args := []any{}
	if ownerID, ok := scope.OwnerID(); ok {
		where = " WHERE owner_id = $1"
		args = append(args, ownerID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM assets" + where
	if err := r.Querier(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, r.HandleError(err, "asset")
	}

	query := "SELECT " + assetColumns + " FROM assets" + where +
		" ORDER BY symbol ASC" +
		" OFFSET $" + placeholder(len(args)+1) + " LIMIT $" + placeholder(len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.HandleError(err, "asset")
	}
	defer rows.Close()

	assets := make([]*entity.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, 0, r.HandleError(err, "asset")
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.HandleError(err, "asset")
	}

	return assets, total, nil
}

// Create は資産を作成します
func (r *AssetRepository) Create(ctx context.Context, asset *entity.Asset) (*entity.Asset, error) {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.Querier(ctx).Exec(ctx, query,
		asset.ID,
		asset.OwnerID,
		asset.Symbol,
		asset.Name,
		string(asset.Class),
		asset.Currency.String(),
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "asset")
	}
	return asset, nil
}

// Update は資産を更新します
// 対象行が消えている場合はNotFoundを返す
func (r *AssetRepository) Update(ctx context.Context, asset *entity.Asset) (*entity.Asset, error) {
	query := `
		UPDATE assets
		SET name = $2, asset_class = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, query,
		asset.ID,
		asset.Name,
		string(asset.Class),
		asset.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "asset")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError("asset")
	}
	return asset, nil
}

// Delete は資産を削除し、削除前の状態を返します
func (r *AssetRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Asset, error) {
	query := "DELETE FROM assets WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}
	query += " RETURNING " + assetColumns

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	asset, err := scanAsset(row)
	if err != nil {
		return nil, r.HandleError(err, "asset")
	}
	return asset, nil
}

func scanAsset(row pgx.Row) (*entity.Asset, error) {
	var (
		a        entity.Asset
		class    string
		currency string
	)
	if err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Symbol,
		&a.Name,
		&class,
		&currency,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Class = valueobject.AssetClass(class)
	a.Currency = valueobject.Currency(currency)
	return &a, nil
}
