package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// Currency はISO 4217の通貨コードを表す値オブジェクト
type Currency string

// NewCurrency は文字列からCurrencyを生成します
func NewCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return "", ErrInvalidCurrency
	}
	return c, nil
}

// IsValid は通貨コードの形式が有効かを判定します
// 網羅的なISOテーブルは持たず、3文字の英大文字であることのみを検証する
func (c Currency) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// String は文字列を返します
func (c Currency) String() string {
	return string(c)
}

// Equals は2つのCurrencyが等しいかを判定します
func (c Currency) Equals(other Currency) bool {
	return c == other
}
