package resource

import (
	"context"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/pkg/logger"
)

// curatedPermissionSets は業務上意味のある権限組の列挙
// 各エントリは4フィールドの完全一致で判定される（優先順位カスケードではない）
// ここに無い組はすべて全面拒否のデフォルトバリアントに束縛される
var curatedPermissionSets = map[authz.PermissionSet]struct{}{
	// 管理者: 全アクション無制限
	{Read: authz.ReadAll, Create: authz.CreateAll, Update: authz.UpdateAll, Delete: authz.DeleteAll}: {},
	// オペレーター: 削除以外無制限
	{Read: authz.ReadAll, Create: authz.CreateAll, Update: authz.UpdateAll, Delete: authz.DeleteNone}: {},
	// 監査: 全件読み取りのみ
	{Read: authz.ReadAll, Create: authz.CreateNone, Update: authz.UpdateNone, Delete: authz.DeleteNone}: {},
	// サポート: 全件読み取り + 自分名義の書き込み
	{Read: authz.ReadAll, Create: authz.CreateOwn, Update: authz.UpdateOwn, Delete: authz.DeleteOwn}: {},
	// 管理者（ユーザー管理）: 作成はIDプロバイダ経由のみ、削除は本人のみ
	{Read: authz.ReadAll, Create: authz.CreateNone, Update: authz.UpdateAll, Delete: authz.DeleteOwn}: {},
	// メンバー: 自分の行のみ全アクション
	{Read: authz.ReadOwn, Create: authz.CreateOwn, Update: authz.UpdateOwn, Delete: authz.DeleteOwn}: {},
	// メンバー（自己管理）: 作成経路を持たない自分の行の読み書きと削除
	{Read: authz.ReadOwn, Create: authz.CreateNone, Update: authz.UpdateOwn, Delete: authz.DeleteOwn}: {},
	// メンバー（削除不可）
	{Read: authz.ReadOwn, Create: authz.CreateOwn, Update: authz.UpdateOwn, Delete: authz.DeleteNone}: {},
	// 投稿者: 自分の行の読み取りと作成のみ
	{Read: authz.ReadOwn, Create: authz.CreateOwn, Update: authz.UpdateNone, Delete: authz.DeleteNone}: {},
	// 閲覧者: 自分の行の読み取りのみ
	{Read: authz.ReadOwn, Create: authz.CreateNone, Update: authz.UpdateNone, Delete: authz.DeleteNone}: {},
	// ブロック済み
	{Read: authz.ReadNone, Create: authz.CreateNone, Update: authz.UpdateNone, Delete: authz.DeleteNone}: {},
}

// IsCurated は権限組がディスパッチテーブルに存在するかを判定します
func IsCurated(perms authz.PermissionSet) bool {
	_, ok := curatedPermissionSets[perms]
	return ok
}

// BuildService は解決済み権限に束縛されたサービスを構築します
// テーブルに無い組は全面拒否のデフォルトへフォールバックする（fail closed）
// 構築は純粋でI/Oを伴わず、リクエストごとに再実行される
func BuildService[E any, P any](ctx context.Context, def Definition[E, P], caller authz.Subject, perms authz.PermissionSet) *Service[E, P] {
	if !IsCurated(perms) {
		// ポリシー誤設定の観測可能性のため警告を残すが、契約は変えない
		logger.Warn(ctx, "permission tuple outside curated set, falling back to restricted",
			"resource_kind", def.Kind.String(),
			"permission_set", perms.String(),
		)
		perms = authz.RestrictedPermissionSet()
	}

	s := &Service[E, P]{
		kind:  def.Kind,
		perms: perms,
	}

	switch perms.Read {
	case authz.ReadOwn:
		s.get = getOwn[E]{store: def.Store, kind: def.Kind, caller: caller.ID}
	case authz.ReadAll:
		s.get = getAll[E]{store: def.Store, kind: def.Kind}
	default:
		s.get = getNone[E]{}
	}

	switch perms.Create {
	case authz.CreateOwn:
		s.create = createOwn[E]{store: def.Store, ownerOf: def.OwnerOf, caller: caller.ID}
	case authz.CreateAll:
		s.create = createAll[E]{store: def.Store}
	default:
		s.create = createNone[E]{}
	}

	switch perms.Update {
	case authz.UpdateOwn:
		s.update = newUpdateOwn(def, caller.ID)
	case authz.UpdateAll:
		s.update = newUpdateAll(def)
	default:
		s.update = updateNone[E, P]{}
	}

	switch perms.Delete {
	case authz.DeleteOwn:
		s.delete = newDeleteOwn(def, caller.ID)
	case authz.DeleteAll:
		s.delete = newDeleteAll(def)
	default:
		s.delete = deleteNone[E]{}
	}

	return s
}
