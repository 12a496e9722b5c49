package authz

import (
	"context"
	"errors"
	"fmt"
)

// Action はCRUD動詞を表す型
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AllActions は全てのアクションを返します
func AllActions() []Action {
	return []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}
}

// String は文字列を返します
func (a Action) String() string {
	return string(a)
}

// Decision はポリシーエンジンの判定結果を表す型
type Decision string

const (
	DecisionDenied Decision = "denied"
	DecisionOwn    Decision = "granted_own"
	DecisionAll    Decision = "granted_all"
)

// String は文字列を返します
func (d Decision) String() string {
	return string(d)
}

// PolicyOracle は外部ポリシーエンジンへの問い合わせインターフェース
// 判定内容はブラックボックスとして扱い、結果のみを信頼する
// 判定が得られない場合はDecisionDeniedを返すこと（許可側へのフォールバック禁止）
type PolicyOracle interface {
	// Evaluate はサブジェクトのリソース種別・アクションに対する判定を返します
	Evaluate(ctx context.Context, subject Subject, kind ResourceKind, action Action) (Decision, error)
}

// PolicyResolutionError はポリシー解決の失敗を表します
// オラクル到達不能・ポリシーデータ不正など。リクエストに対して致命的であり、
// 決して許可側に降格してはならない
type PolicyResolutionError struct {
	Kind   ResourceKind
	Action Action
	Err    error
}

// Error はerrorインターフェースを実装します
func (e *PolicyResolutionError) Error() string {
	return fmt.Sprintf("policy resolution failed for %s:%s: %v", e.Kind, e.Action, e.Err)
}

// Unwrap は元のエラーを返します
func (e *PolicyResolutionError) Unwrap() error {
	return e.Err
}

// NewPolicyResolutionError は新しいPolicyResolutionErrorを作成します
func NewPolicyResolutionError(kind ResourceKind, action Action, err error) *PolicyResolutionError {
	return &PolicyResolutionError{Kind: kind, Action: action, Err: err}
}

// IsPolicyResolutionError はポリシー解決エラーかどうかを判定します
func IsPolicyResolutionError(err error) bool {
	var pre *PolicyResolutionError
	return errors.As(err, &pre)
}
