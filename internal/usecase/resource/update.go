package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// updater は更新ファミリの戦略インターフェース
type updater[E any, P any] interface {
	update(ctx context.Context, id uuid.UUID, patch P) (E, error)
}

// updateNone は更新禁止バリアント
type updateNone[E any, P any] struct{}

func (updateNone[E, P]) update(ctx context.Context, id uuid.UUID, patch P) (E, error) {
	var zero E
	return zero, apperror.NewForbiddenError("operation not permitted")
}

// updateScoped はOwn/All共通の更新バリアント
// 取得はReadレベルではなくUpdateレベルのスコープで行う
// （更新は読み取り権限とは独立に自前の存在・所有チェックを行う）
// fetch-merge-persistは単一トランザクション内で実行され、
// fetch後に行が消えた場合はConflictとして報告する
type updateScoped[E any, P any] struct {
	def   Definition[E, P]
	scope repository.OwnerScope
}

func (u updateScoped[E, P]) update(ctx context.Context, id uuid.UUID, patch P) (E, error) {
	var result E

	err := u.def.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		current, err := u.def.Store.FindByID(ctx, id, u.scope)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFoundError(u.def.Kind.String())
			}
			return err
		}

		merged := u.def.Merge(current, patch)

		persisted, err := u.def.Store.Update(ctx, merged)
		if err != nil {
			// fetch後の行消失は並行削除との競合
			if apperror.IsNotFound(err) {
				return apperror.NewConflictError("concurrent modification detected")
			}
			return err
		}

		result = persisted
		return nil
	})
	if err != nil {
		var zero E
		return zero, err
	}

	return result, nil
}

// newUpdateOwn は所有行のみ更新可能なバリアントを作成します
func newUpdateOwn[E any, P any](def Definition[E, P], caller uuid.UUID) updater[E, P] {
	return updateScoped[E, P]{def: def, scope: repository.ScopeOwner(caller)}
}

// newUpdateAll は所有者制限なしの更新バリアントを作成します
func newUpdateAll[E any, P any](def Definition[E, P]) updater[E, P] {
	return updateScoped[E, P]{def: def, scope: repository.ScopeAll()}
}
