package authz

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
)

// スコープ列の値。ポリシー行の第4列に対応する
const (
	scopeOwn = "own"
	scopeAll = "all"
)

// CasbinOracle はCasbinエンフォーサーを用いたPolicyOracleの実装です
// ポリシー行は (ロール, リソース種別, アクション, スコープ) の4つ組で、
// サブジェクトのロール経由でマッチする
type CasbinOracle struct {
	enforcer *casbin.Enforcer
}

// NewCasbinOracle はモデル定義とポリシーファイルからCasbinOracleを作成します
func NewCasbinOracle(modelPath, policyPath string) (*CasbinOracle, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize policy enforcer: %w", err)
	}
	return &CasbinOracle{enforcer: enforcer}, nil
}

// NewCasbinOracleFromEnforcer は構築済みエンフォーサーをラップします
func NewCasbinOracleFromEnforcer(enforcer *casbin.Enforcer) *CasbinOracle {
	return &CasbinOracle{enforcer: enforcer}
}

// Evaluate はサブジェクトのリソース種別・アクションに対する判定を返します
// Allスコープの許可を優先して探し、次にOwnスコープを探す
// どちらにもマッチしなければ拒否。評価失敗は拒否に加えてエラーを返す
func (o *CasbinOracle) Evaluate(ctx context.Context, subject authz.Subject, kind authz.ResourceKind, action authz.Action) (authz.Decision, error) {
	granted, err := o.anyRoleGranted(subject, kind, action, scopeAll)
	if err != nil {
		return authz.DecisionDenied, authz.NewPolicyResolutionError(kind, action, err)
	}
	if granted {
		return authz.DecisionAll, nil
	}

	granted, err = o.anyRoleGranted(subject, kind, action, scopeOwn)
	if err != nil {
		return authz.DecisionDenied, authz.NewPolicyResolutionError(kind, action, err)
	}
	if granted {
		return authz.DecisionOwn, nil
	}

	return authz.DecisionDenied, nil
}

// Reload はポリシーファイルを再読み込みします
// ファイル配布でポリシーを更新する運用のため、再起動なしで反映できる
func (o *CasbinOracle) Reload() error {
	if err := o.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	return nil
}

func (o *CasbinOracle) anyRoleGranted(subject authz.Subject, kind authz.ResourceKind, action authz.Action, scope string) (bool, error) {
	for _, role := range subject.Roles {
		ok, err := o.enforcer.Enforce(role, kind.String(), action.String(), scope)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
