package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
)

// Institution は金融機関エンティティ
type Institution struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Kind      valueobject.InstitutionKind
	Country   string // ISO 3166-1 alpha-2
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInstitution は新しい金融機関を作成します
func NewInstitution(ownerID uuid.UUID, name string, kind valueobject.InstitutionKind, country string) *Institution {
	now := time.Now()
	return &Institution{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Kind:      kind,
		Country:   country,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReconstructInstitution はDBから金融機関を復元します
func ReconstructInstitution(
	id, ownerID uuid.UUID,
	name string,
	kind valueobject.InstitutionKind,
	country string,
	createdAt, updatedAt time.Time,
) *Institution {
	return &Institution{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Kind:      kind,
		Country:   country,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Rename は機関名を変更します
func (i *Institution) Rename(name string) {
	i.Name = name
	i.UpdatedAt = time.Now()
}

// ChangeKind は機関種別を変更します
func (i *Institution) ChangeKind(kind valueobject.InstitutionKind) {
	i.Kind = kind
	i.UpdatedAt = time.Now()
}

// Relocate は所在国を変更します
func (i *Institution) Relocate(country string) {
	i.Country = country
	i.UpdatedAt = time.Now()
}

// IsOwnedBy は指定されたサブジェクトが所有者かを判定します
func (i *Institution) IsOwnedBy(subjectID uuid.UUID) bool {
	return i.OwnerID == subjectID
}
