package authz

import "context"

// PermissionResolver は権限解決を行うサービスインターフェース
// リクエストごとに呼び出され、サブジェクトとリソース種別から
// 4アクションのレベル組を解決する。結果のキャッシュは行わない
// （ポリシーはリクエスト間で変化しうる）
type PermissionResolver interface {
	// Resolve はサブジェクトのリソース種別に対するPermissionSetを解決します
	// オラクルの判定をレベルへ写像し、種別ごとのエンベロープで下方クランプする
	// オラクル障害時はPolicyResolutionErrorを返す（許可側への降格禁止）
	Resolve(ctx context.Context, subject Subject, kind ResourceKind) (PermissionSet, error)
}

// DecisionToReadLevel はオラクル判定をReadLevelへ写像します
func DecisionToReadLevel(d Decision) ReadLevel {
	switch d {
	case DecisionOwn:
		return ReadOwn
	case DecisionAll:
		return ReadAll
	default:
		return ReadNone
	}
}

// DecisionToCreateLevel はオラクル判定をCreateLevelへ写像します
func DecisionToCreateLevel(d Decision) CreateLevel {
	switch d {
	case DecisionOwn:
		return CreateOwn
	case DecisionAll:
		return CreateAll
	default:
		return CreateNone
	}
}

// DecisionToUpdateLevel はオラクル判定をUpdateLevelへ写像します
func DecisionToUpdateLevel(d Decision) UpdateLevel {
	switch d {
	case DecisionOwn:
		return UpdateOwn
	case DecisionAll:
		return UpdateAll
	default:
		return UpdateNone
	}
}

// DecisionToDeleteLevel はオラクル判定をDeleteLevelへ写像します
func DecisionToDeleteLevel(d Decision) DeleteLevel {
	switch d {
	case DecisionOwn:
		return DeleteOwn
	case DecisionAll:
		return DeleteAll
	default:
		return DeleteNone
	}
}
