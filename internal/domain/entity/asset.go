package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
)

// Asset は資産エンティティ
// テナントごとに独立した資産台帳を持つため、資産もサブジェクトに所有される
type Asset struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Symbol    string
	Name      string
	Class     valueobject.AssetClass
	Currency  valueobject.Currency
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAsset は新しい資産を作成します
func NewAsset(ownerID uuid.UUID, symbol, name string, class valueobject.AssetClass, currency valueobject.Currency) *Asset {
	now := time.Now()
	return &Asset{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Symbol:    symbol,
		Name:      name,
		Class:     class,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReconstructAsset はDBから資産を復元します
func ReconstructAsset(
	id, ownerID uuid.UUID,
	symbol, name string,
	class valueobject.AssetClass,
	currency valueobject.Currency,
	createdAt, updatedAt time.Time,
) *Asset {
	return &Asset{
		ID:        id,
		OwnerID:   ownerID,
		Symbol:    symbol,
		Name:      name,
		Class:     class,
		Currency:  currency,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Rename は資産名を変更します
func (a *Asset) Rename(name string) {
	a.Name = name
	a.UpdatedAt = time.Now()
}

// Reclassify は資産クラスを変更します
func (a *Asset) Reclassify(class valueobject.AssetClass) {
	a.Class = class
	a.UpdatedAt = time.Now()
}

// IsOwnedBy は指定されたサブジェクトが所有者かを判定します
func (a *Asset) IsOwnedBy(subjectID uuid.UUID) bool {
	return a.OwnerID == subjectID
}
