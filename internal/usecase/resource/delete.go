package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// deleter は削除ファミリの戦略インターフェース
type deleter[E any] interface {
	delete(ctx context.Context, id uuid.UUID) (E, error)
}

// deleteNone は削除禁止バリアント
type deleteNone[E any] struct{}

func (deleteNone[E]) delete(ctx context.Context, id uuid.UUID) (E, error) {
	var zero E
	return zero, apperror.NewForbiddenError("operation not permitted")
}

// deleteScoped はOwn/All共通の削除バリアント
// 更新と同様に自前の存在・所有チェックを行ってから削除し、
// 削除前の状態を返す。チェック後に行が消えた場合はConflict
type deleteScoped[E any, P any] struct {
	def   Definition[E, P]
	scope repository.OwnerScope
}

func (d deleteScoped[E, P]) delete(ctx context.Context, id uuid.UUID) (E, error) {
	var result E

	err := d.def.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := d.def.Store.FindByID(ctx, id, d.scope); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFoundError(d.def.Kind.String())
			}
			return err
		}

		prior, err := d.def.Store.Delete(ctx, id, d.scope)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewConflictError("concurrent modification detected")
			}
			return err
		}

		result = prior
		return nil
	})
	if err != nil {
		var zero E
		return zero, err
	}

	return result, nil
}

// newDeleteOwn は所有行のみ削除可能なバリアントを作成します
func newDeleteOwn[E any, P any](def Definition[E, P], caller uuid.UUID) deleter[E] {
	return deleteScoped[E, P]{def: def, scope: repository.ScopeOwner(caller)}
}

// newDeleteAll は所有者制限なしの削除バリアントを作成します
func newDeleteAll[E any, P any](def Definition[E, P]) deleter[E] {
	return deleteScoped[E, P]{def: def, scope: repository.ScopeAll()}
}
