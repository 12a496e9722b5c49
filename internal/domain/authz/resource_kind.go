package authz

import "errors"

var (
	ErrInvalidResourceKind = errors.New("invalid resource kind")
)

// ResourceKind は権限解決の対象となるドメインエンティティ種別を表す型
type ResourceKind string

const (
	KindAccount     ResourceKind = "account"
	KindAsset       ResourceKind = "asset"
	KindInstitution ResourceKind = "institution"
	KindTransaction ResourceKind = "transaction"
	KindUser        ResourceKind = "user"
)

// AllResourceKinds は全てのリソース種別を返します
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{KindAccount, KindAsset, KindInstitution, KindTransaction, KindUser}
}

// NewResourceKind は文字列からResourceKindを生成します
func NewResourceKind(k string) (ResourceKind, error) {
	kind := ResourceKind(k)
	if !kind.IsValid() {
		return "", ErrInvalidResourceKind
	}
	return kind, nil
}

// IsValid はリソース種別が有効かを判定します
func (k ResourceKind) IsValid() bool {
	switch k {
	case KindAccount, KindAsset, KindInstitution, KindTransaction, KindUser:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (k ResourceKind) String() string {
	return string(k)
}
