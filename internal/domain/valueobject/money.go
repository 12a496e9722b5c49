package valueobject

import (
	"errors"
	"fmt"
)

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money は金額を表す値オブジェクト
// 浮動小数点誤差を避けるため、通貨の最小単位（セント等）の整数で保持する
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney は新しいMoneyを作成します
func NewMoney(amount int64, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// Amount は最小単位の金額を返します
func (m Money) Amount() int64 {
	return m.amount
}

// Currency は通貨を返します
func (m Money) Currency() Currency {
	return m.currency
}

// Add は同一通貨のMoneyを加算します
func (m Money) Add(other Money) (Money, error) {
	if !m.currency.Equals(other.currency) {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Negate は符号を反転したMoneyを返します
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// IsNegative は負の金額かを判定します
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero はゼロ金額かを判定します
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String は文字列を返します
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
