package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// UserRepository はユーザーリポジトリインターフェースを定義します
// ユーザーは自分自身を所有するため、Ownスコープは id = サブジェクトID に縮退する
type UserRepository interface {
	// FindByID はIDでユーザーを検索します
	FindByID(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.User, error)

	// List はユーザーの一覧と総件数を返します
	List(ctx context.Context, scope OwnerScope, offset, limit int) ([]*entity.User, int, error)

	// Create はユーザーを作成します
	Create(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update はユーザーを更新します
	Update(ctx context.Context, user *entity.User) (*entity.User, error)

	// Delete はユーザーを削除し、削除前の状態を返します
	Delete(ctx context.Context, id uuid.UUID, scope OwnerScope) (*entity.User, error)
}
