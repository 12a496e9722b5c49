package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// InstitutionRepository は金融機関リポジトリインターフェースを定義します
type InstitutionRepository interface {
	// FindByID はIDで金融機関を検索します
	FindByID(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Institution, error)

	// List は金融機関の一覧と総件数を返します
	List(ctx context.Context, scope OwnerScope, offset, limit int) ([]*entity.Institution, int, error)

	// Create は金融機関を作成します
	Create(ctx context.Context, institution *entity.Institution) (*entity.Institution, error)

	// Update は金融機関を更新します
	Update(ctx context.Context, institution *entity.Institution) (*entity.Institution, error)

	// Delete は金融機関を削除し、削除前の状態を返します
	Delete(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Institution, error)
}
