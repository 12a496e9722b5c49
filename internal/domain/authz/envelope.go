package authz

// LevelEnvelope はリソース種別ごとにAPIが許容する上限レベルを定義します
// オラクルがより広いスコープを返しても、この上限を超えるレベルは付与されない
// （エンドポイント側で扱う範囲を狭めるための下方クランプ）
type LevelEnvelope struct {
	Read   ReadLevel
	Create CreateLevel
	Update UpdateLevel
	Delete DeleteLevel
}

// OpenEnvelope は全アクションAllまで許容するエンベロープを返します
func OpenEnvelope() LevelEnvelope {
	return LevelEnvelope{
		Read:   ReadAll,
		Create: CreateAll,
		Update: UpdateAll,
		Delete: DeleteAll,
	}
}

// DefaultEnvelopes はリソース種別ごとのデフォルトエンベロープを返します
// ユーザーの作成はIDプロバイダの責務のためAPI経由では常に不可、
// ユーザーの削除は本人のみ（Own止まり）
func DefaultEnvelopes() map[ResourceKind]LevelEnvelope {
	return map[ResourceKind]LevelEnvelope{
		KindAccount:     OpenEnvelope(),
		KindAsset:       OpenEnvelope(),
		KindInstitution: OpenEnvelope(),
		KindTransaction: OpenEnvelope(),
		KindUser: {
			Read:   ReadAll,
			Create: CreateNone,
			Update: UpdateAll,
			Delete: DeleteOwn,
		},
	}
}

// levelRank はクランプ計算専用の内部順序
// セキュリティ判定には使用しない（レベル自体は独立したコードパス）
func levelRank(l string) int {
	switch l {
	case "own":
		return 1
	case "all":
		return 2
	default:
		return 0
	}
}

// Clamp は解決済みPermissionSetをエンベロープの上限に収めます
func (e LevelEnvelope) Clamp(ps PermissionSet) PermissionSet {
	clamped := ps
	if levelRank(string(ps.Read)) > levelRank(string(e.Read)) {
		clamped.Read = e.Read
	}
	if levelRank(string(ps.Create)) > levelRank(string(e.Create)) {
		clamped.Create = e.Create
	}
	if levelRank(string(ps.Update)) > levelRank(string(e.Update)) {
		clamped.Update = e.Update
	}
	if levelRank(string(ps.Delete)) > levelRank(string(e.Delete)) {
		clamped.Delete = e.Delete
	}
	return clamped
}
