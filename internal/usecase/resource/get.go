package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// getter は読み取りファミリの戦略インターフェース
// None/Own/Allの3バリアントのみが存在する
type getter[E any] interface {
	get(ctx context.Context, id uuid.UUID) (E, error)
	list(ctx context.Context, offset, limit int) ([]E, int, error)
}

// getNone は読み取り禁止バリアント
// データアクセスを一切行わずに拒否する
type getNone[E any] struct{}

func (getNone[E]) get(ctx context.Context, id uuid.UUID) (E, error) {
	var zero E
	return zero, apperror.NewForbiddenError("operation not permitted")
}

func (getNone[E]) list(ctx context.Context, offset, limit int) ([]E, int, error) {
	return nil, 0, apperror.NewForbiddenError("operation not permitted")
}

// getOwn は呼び出し主体の所有行のみ可視のバリアント
// 所有者不一致と真の不在は区別せずNotFoundを返す
type getOwn[E any] struct {
	store  Store[E]
	kind   authz.ResourceKind
	caller uuid.UUID
}

func (g getOwn[E]) get(ctx context.Context, id uuid.UUID) (E, error) {
	e, err := g.store.FindByID(ctx, id, repository.ScopeOwner(g.caller))
	if err != nil {
		var zero E
		if apperror.IsNotFound(err) {
			return zero, apperror.NewNotFoundError(g.kind.String())
		}
		return zero, err
	}
	return e, nil
}

func (g getOwn[E]) list(ctx context.Context, offset, limit int) ([]E, int, error) {
	return g.store.List(ctx, repository.ScopeOwner(g.caller), offset, limit)
}

// getAll は所有者制限なしのバリアント
type getAll[E any] struct {
	store Store[E]
	kind  authz.ResourceKind
}

func (g getAll[E]) get(ctx context.Context, id uuid.UUID) (E, error) {
	e, err := g.store.FindByID(ctx, id, repository.ScopeAll())
	if err != nil {
		var zero E
		if apperror.IsNotFound(err) {
			return zero, apperror.NewNotFoundError(g.kind.String())
		}
		return zero, err
	}
	return e, nil
}

func (g getAll[E]) list(ctx context.Context, offset, limit int) ([]E, int, error) {
	return g.store.List(ctx, repository.ScopeAll(), offset, limit)
}
