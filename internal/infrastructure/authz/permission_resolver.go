package authz

import (
	"context"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
)

// PermissionResolverImpl は権限解決サービスの実装です
// 権限解決の流れ:
// 1. アクションごとにオラクルへ問い合わせる（リクエストごと、キャッシュなし）
// 2. 判定をアクションレベルへ写像する（判定なしはNone）
// 3. リソース種別のエンベロープで上限に収める
// オラクル失敗はPolicyResolutionErrorとして呼び出し側へ伝播し、
// 決して許可側に降格しない
type PermissionResolverImpl struct {
	oracle    authz.PolicyOracle
	envelopes map[authz.ResourceKind]authz.LevelEnvelope
}

// NewPermissionResolver は新しいPermissionResolverを作成します
func NewPermissionResolver(oracle authz.PolicyOracle) *PermissionResolverImpl {
	return &PermissionResolverImpl{
		oracle:    oracle,
		envelopes: authz.DefaultEnvelopes(),
	}
}

// Resolve はサブジェクトのリソース種別に対するPermissionSetを解決します
func (r *PermissionResolverImpl) Resolve(ctx context.Context, subject authz.Subject, kind authz.ResourceKind) (authz.PermissionSet, error) {
	readDecision, err := r.oracle.Evaluate(ctx, subject, kind, authz.ActionRead)
	if err != nil {
		return authz.PermissionSet{}, err
	}
	createDecision, err := r.oracle.Evaluate(ctx, subject, kind, authz.ActionCreate)
	if err != nil {
		return authz.PermissionSet{}, err
	}
	updateDecision, err := r.oracle.Evaluate(ctx, subject, kind, authz.ActionUpdate)
	if err != nil {
		return authz.PermissionSet{}, err
	}
	deleteDecision, err := r.oracle.Evaluate(ctx, subject, kind, authz.ActionDelete)
	if err != nil {
		return authz.PermissionSet{}, err
	}

	resolved := authz.PermissionSet{
		Read:   authz.DecisionToReadLevel(readDecision),
		Create: authz.DecisionToCreateLevel(createDecision),
		Update: authz.DecisionToUpdateLevel(updateDecision),
		Delete: authz.DecisionToDeleteLevel(deleteDecision),
	}

	envelope, ok := r.envelopes[kind]
	if !ok {
		envelope = authz.OpenEnvelope()
	}
	return envelope.Clamp(resolved), nil
}
