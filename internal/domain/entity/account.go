package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
)

// Account は口座エンティティ（集約ルート）
// OwnerIDはOwnスコープ権限の所有者述語のキーとなる
type Account struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	InstitutionID uuid.UUID
	Name          string
	Type          valueobject.AccountType
	Currency      valueobject.Currency
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount は新しい口座を作成します
func NewAccount(ownerID, institutionID uuid.UUID, name string, accountType valueobject.AccountType, currency valueobject.Currency) *Account {
	now := time.Now()
	return &Account{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		InstitutionID: institutionID,
		Name:          name,
		Type:          accountType,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ReconstructAccount はDBから口座を復元します
func ReconstructAccount(
	id, ownerID, institutionID uuid.UUID,
	name string,
	accountType valueobject.AccountType,
	currency valueobject.Currency,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		ID:            id,
		OwnerID:       ownerID,
		InstitutionID: institutionID,
		Name:          name,
		Type:          accountType,
		Currency:      currency,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// Rename は口座名を変更します
func (a *Account) Rename(name string) {
	a.Name = name
	a.UpdatedAt = time.Now()
}

// ChangeType は口座種別を変更します
func (a *Account) ChangeType(accountType valueobject.AccountType) {
	a.Type = accountType
	a.UpdatedAt = time.Now()
}

// MoveToInstitution は口座の所属機関を変更します
func (a *Account) MoveToInstitution(institutionID uuid.UUID) {
	a.InstitutionID = institutionID
	a.UpdatedAt = time.Now()
}

// IsOwnedBy は指定されたサブジェクトが所有者かを判定します
func (a *Account) IsOwnedBy(subjectID uuid.UUID) bool {
	return a.OwnerID == subjectID
}
