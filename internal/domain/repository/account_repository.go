package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// AccountRepository は口座リポジトリインターフェースを定義します
// scopeに所有者制限がある場合、各操作の検索条件に owner_id 述語がマージされる
type AccountRepository interface {
	// FindByID はIDで口座を検索します
	FindByID(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Account, error)

	// List は口座の一覧と総件数を返します
	List(ctx context.Context, scope OwnerScope, offset, limit int) ([]*entity.Account, int, error)

	// Create は口座を作成します
	Create(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// Update は口座を更新します
	// 対象行が存在しない場合はNotFoundを返す（呼び出し側で競合として扱う）
	Update(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// Delete は口座を削除し、削除前の状態を返します
	Delete(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Account, error)
}
