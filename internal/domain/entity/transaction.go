package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
)

// 取引関連エラー
var (
	ErrTransactionAssetRequired = errors.New("transaction kind requires an asset")
)

// Transaction は取引エンティティ（集約ルート）
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	AccountID   uuid.UUID
	AssetID     *uuid.UUID // 現金取引ではnil
	Kind        valueobject.TransactionKind
	Amount      valueobject.Money
	Quantity    int64 // 資産取引の数量（最小単位の1e-6刻み）、現金取引では0
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction は新しい取引を作成します
func NewTransaction(
	ownerID, accountID uuid.UUID,
	assetID *uuid.UUID,
	kind valueobject.TransactionKind,
	amount valueobject.Money,
	quantity int64,
	description string,
	occurredAt time.Time,
) (*Transaction, error) {
	if kind.RequiresAsset() && assetID == nil {
		return nil, ErrTransactionAssetRequired
	}

	now := time.Now()
	return &Transaction{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		AccountID:   accountID,
		AssetID:     assetID,
		Kind:        kind,
		Amount:      amount,
		Quantity:    quantity,
		Description: description,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ReconstructTransaction はDBから取引を復元します
func ReconstructTransaction(
	id, ownerID, accountID uuid.UUID,
	assetID *uuid.UUID,
	kind valueobject.TransactionKind,
	amount valueobject.Money,
	quantity int64,
	description string,
	occurredAt, createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		ID:          id,
		OwnerID:     ownerID,
		AccountID:   accountID,
		AssetID:     assetID,
		Kind:        kind,
		Amount:      amount,
		Quantity:    quantity,
		Description: description,
		OccurredAt:  occurredAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Amend は取引内容を修正します
func (t *Transaction) Amend(amount valueobject.Money, quantity int64, description string, occurredAt time.Time) {
	t.Amount = amount
	t.Quantity = quantity
	t.Description = description
	t.OccurredAt = occurredAt
	t.UpdatedAt = time.Now()
}

// IsOwnedBy は指定されたサブジェクトが所有者かを判定します
func (t *Transaction) IsOwnedBy(subjectID uuid.UUID) bool {
	return t.OwnerID == subjectID
}
