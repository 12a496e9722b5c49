package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
)

// Service は解決済み権限に束縛されたリソースサービスです
// 構築時に各アクションのバリアントが確定しており、
// 操作のホットパスに権限分岐は存在しない
// リクエストごとに構築され、リクエスト終了とともに破棄される
type Service[E any, P any] struct {
	kind   authz.ResourceKind
	perms  authz.PermissionSet
	get    getter[E]
	create creator[E]
	update updater[E, P]
	delete deleter[E]
}

// Kind はリソース種別を返します
func (s *Service[E, P]) Kind() authz.ResourceKind {
	return s.kind
}

// Permissions は束縛されているPermissionSetを返します
func (s *Service[E, P]) Permissions() authz.PermissionSet {
	return s.perms
}

// Get はIDでエンティティを取得します
func (s *Service[E, P]) Get(ctx context.Context, id uuid.UUID) (E, error) {
	return s.get.get(ctx, id)
}

// GetList はエンティティの一覧と総件数を取得します
// 単数取得と同じ所有者述語が一覧にも適用される
func (s *Service[E, P]) GetList(ctx context.Context, offset, limit int) ([]E, int, error) {
	return s.get.list(ctx, offset, limit)
}

// Create はエンティティを作成します
func (s *Service[E, P]) Create(ctx context.Context, e E) (E, error) {
	return s.create.create(ctx, e)
}

// Update は部分更新ペイロードを適用してエンティティを更新します
func (s *Service[E, P]) Update(ctx context.Context, id uuid.UUID, patch P) (E, error) {
	return s.update.update(ctx, id, patch)
}

// Delete はエンティティを削除し、削除前の状態を返します
func (s *Service[E, P]) Delete(ctx context.Context, id uuid.UUID) (E, error) {
	return s.delete.delete(ctx, id)
}
