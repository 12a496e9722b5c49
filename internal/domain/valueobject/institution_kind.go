package valueobject

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInstitutionKind = errors.New("invalid institution kind")
)

// InstitutionKind は金融機関の種別を表す値オブジェクト
type InstitutionKind string

const (
	InstitutionKindBank      InstitutionKind = "bank"
	InstitutionKindBrokerage InstitutionKind = "brokerage"
	InstitutionKindExchange  InstitutionKind = "exchange"
	InstitutionKindInsurer   InstitutionKind = "insurer"
	InstitutionKindOther     InstitutionKind = "other"
)

// NewInstitutionKind は文字列からInstitutionKindを生成します
func NewInstitutionKind(s string) (InstitutionKind, error) {
	ik := InstitutionKind(strings.ToLower(s))
	if !ik.IsValid() {
		return "", ErrInvalidInstitutionKind
	}
	return ik, nil
}

// IsValid は機関種別が有効かを判定します
func (ik InstitutionKind) IsValid() bool {
	switch ik {
	case InstitutionKindBank, InstitutionKindBrokerage, InstitutionKindExchange,
		InstitutionKindInsurer, InstitutionKindOther:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (ik InstitutionKind) String() string {
	return string(ik)
}
