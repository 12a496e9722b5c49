package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
)

// AccountType は口座の種別を表す値オブジェクト
type AccountType string

const (
	AccountTypeChecking  AccountType = "checking"
	AccountTypeSavings   AccountType = "savings"
	AccountTypeBrokerage AccountType = "brokerage"
	AccountTypeCredit    AccountType = "credit"
	AccountTypeLoan      AccountType = "loan"
	AccountTypeCash      AccountType = "cash"
)

// NewAccountType は文字列からAccountTypeを生成します
func NewAccountType(s string) (AccountType, error) {
	at := AccountType(strings.ToLower(s))
	if !at.IsValid() {
		return "", ErrInvalidAccountType
	}
	return at, nil
}

// IsValid は口座種別が有効かを判定します
func (at AccountType) IsValid() bool {
	switch at {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeBrokerage,
		AccountTypeCredit, AccountTypeLoan, AccountTypeCash:
		return true
	default:
		return false
	}
}

// IsLiability は負債系の口座かを判定します
func (at AccountType) IsLiability() bool {
	return at == AccountTypeCredit || at == AccountTypeLoan
}

// String は文字列を返します
func (at AccountType) String() string {
	return string(at)
}
