package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidAssetClass = errors.New("invalid asset class")
)

// AssetClass は資産のクラスを表す値オブジェクト
type AssetClass string

const (
	AssetClassEquity    AssetClass = "equity"
	AssetClassBond      AssetClass = "bond"
	AssetClassFund      AssetClass = "fund"
	AssetClassCrypto    AssetClass = "crypto"
	AssetClassCommodity AssetClass = "commodity"
	AssetClassCash      AssetClass = "cash"
)

// NewAssetClass は文字列からAssetClassを生成します
func NewAssetClass(s string) (AssetClass, error) {
	ac := AssetClass(strings.ToLower(s))
	if !ac.IsValid() {
		return "", ErrInvalidAssetClass
	}
	return ac, nil
}

// IsValid は資産クラスが有効かを判定します
func (ac AssetClass) IsValid() bool {
	switch ac {
	case AssetClassEquity, AssetClassBond, AssetClassFund,
		AssetClassCrypto, AssetClassCommodity, AssetClassCash:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (ac AssetClass) String() string {
	return string(ac)
}
