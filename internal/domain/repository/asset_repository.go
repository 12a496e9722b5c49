package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// AssetRepository は資産リポジトリインターフェースを定義します
type AssetRepository interface {
	// FindByID はIDで資産を検索します
	FindByID(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Asset, error)

	// List は資産の一覧と総件数を返します
	List(ctx context.Context, scope OwnerScope, offset, limit int) ([]*entity.Asset, int, error)

	// Create は資産を作成します
	Create(ctx context.Context, asset *entity.Asset) (*entity.Asset, error)

	// Update は資産を更新します
	Update(ctx context.Context, asset *entity.Asset) (*entity.Asset, error)

	// Delete は資産を削除し、削除前の状態を返します
	Delete(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Asset, error)
}
