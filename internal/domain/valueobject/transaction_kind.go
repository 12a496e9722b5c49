package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
)

// TransactionKind は取引の種別を表す値オブジェクト
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
	TransactionKindBuy        TransactionKind = "buy"
	TransactionKindSell       TransactionKind = "sell"
	TransactionKindDividend   TransactionKind = "dividend"
	TransactionKindInterest   TransactionKind = "interest"
	TransactionKindFee        TransactionKind = "fee"
	TransactionKindTransfer   TransactionKind = "transfer"
)

// NewTransactionKind は文字列からTransactionKindを生成します
func NewTransactionKind(s string) (TransactionKind, error) {
	tk := TransactionKind(strings.ToLower(s))
	if !tk.IsValid() {
		return "", ErrInvalidTransactionKind
	}
	return tk, nil
}

// IsValid は取引種別が有効かを判定します
func (tk TransactionKind) IsValid() bool {
	switch tk {
	case TransactionKindDeposit, TransactionKindWithdrawal, TransactionKindBuy,
		TransactionKindSell, TransactionKindDividend, TransactionKindInterest,
		TransactionKindFee, TransactionKindTransfer:
		return true
	default:
		return false
	}
}

// RequiresAsset は資産の指定が必須な取引種別かを判定します
func (tk TransactionKind) RequiresAsset() bool {
	switch tk {
	case TransactionKindBuy, TransactionKindSell, TransactionKindDividend:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (tk TransactionKind) String() string {
	return string(tk)
}
