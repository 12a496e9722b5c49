package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// TransactionRepository は取引リポジトリインターフェースを定義します
type TransactionRepository interface {
	// FindByID はIDで取引を検索します
	FindByID(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Transaction, error)

	// List は取引の一覧と総件数を返します
	List(ctx context.Context, scope OwnerScope, offset, limit int) ([]*entity.Transaction, int, error)

	// Create は取引を作成します
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Update は取引を更新します
	Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Delete は取引を削除し、削除前の状態を返します
	Delete(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.Transaction, error)
}
