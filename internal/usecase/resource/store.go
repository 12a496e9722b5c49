package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
)

// Store はリソース種別ごとのデータアクセス能力を定義します
// 各ドメインリポジトリインターフェースはこの形を構造的に満たす
// scopeの所有者述語は生成されるクエリ条件にマージされる
type Store[E any] interface {
	// FindByID はIDでエンティティを検索します
	FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (E, error)

	// List はエンティティの一覧と総件数を返します
	List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]E, int, error)

	// Create はエンティティを作成します
	Create(ctx context.Context, e E) (E, error)

	// Update はエンティティを更新します（対象行消失時はNotFound）
	Update(ctx context.Context, e E) (E, error)

	// Delete はエンティティを削除し、削除前の状態を返します
	Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (E, error)
}

// Definition はリソース種別ごとのサービス構成を定義します
// 5つのリソースファミリは構造的に同一で、この定義だけが異なる
type Definition[E any, P any] struct {
	// Kind はリソース種別タグ
	Kind authz.ResourceKind

	// Store はデータアクセス能力
	Store Store[E]

	// Tx はfetch-merge-persist列を単一トランザクションに収めるためのマネージャ
	Tx repository.TransactionManager

	// OwnerOf はエンティティの所有者IDを返します
	OwnerOf func(E) uuid.UUID

	// Merge は部分更新ペイロードをエンティティにフィールド単位で適用します
	// ペイロードに存在しないフィールドは変更しない
	Merge func(E, P) E
}
