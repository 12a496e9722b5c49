package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// creator は作成ファミリの戦略インターフェース
type creator[E any] interface {
	create(ctx context.Context, e E) (E, error)
}

// createNone は作成禁止バリアント
type createNone[E any] struct{}

func (createNone[E]) create(ctx context.Context, e E) (E, error) {
	var zero E
	return zero, apperror.NewForbiddenError("operation not permitted")
}

// createOwn は自分名義の作成のみ許可するバリアント
// ペイロードの所有者が呼び出し主体と一致しない場合は拒否する
// （Ownスコープの作成権限では他人名義のレコードを作れない）
type createOwn[E any] struct {
	store   Store[E]
	ownerOf func(E) uuid.UUID
	caller  uuid.UUID
}

func (c createOwn[E]) create(ctx context.Context, e E) (E, error) {
	if c.ownerOf(e) != c.caller {
		var zero E
		return zero, apperror.NewForbiddenError("operation not permitted")
	}
	return c.store.Create(ctx, e)
}

// createAll はペイロードの所有者指定をそのまま信頼するバリアント
type createAll[E any] struct {
	store Store[E]
}

func (c createAll[E]) create(ctx context.Context, e E) (E, error) {
	return c.store.Create(ctx, e)
}
