package request

import "time"

// CreateTransactionRequest は取引作成リクエストです
// amountは通貨の最小単位で指定する
type CreateTransactionRequest struct {
	OwnerID     *string   `json:"ownerId" validate:"omitempty,uuid"`
	AccountID   string    `json:"accountId" validate:"required,uuid"`
	AssetID     *string   `json:"assetId" validate:"omitempty,uuid"`
	Kind        string    `json:"kind" validate:"required,oneof=deposit withdrawal buy sell dividend interest fee transfer"`
	Amount      int64     `json:"amount" validate:"required"`
	Currency    string    `json:"currency" validate:"required,currency"`
	Quantity    int64     `json:"quantity" validate:"gte=0"`
	Description string    `json:"description" validate:"max=500"`
	OccurredAt  time.Time `json:"occurredAt" validate:"required"`
}

// UpdateTransactionRequest は取引更新リクエストです
// amountを変更する場合はcurrencyも必須
type UpdateTransactionRequest struct {
	Amount      *int64     `json:"amount"`
	Currency    *string    `json:"currency" validate:"omitempty,currency,required_with=Amount"`
	Quantity    *int64     `json:"quantity" validate:"omitempty,gte=0"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	OccurredAt  *time.Time `json:"occurredAt"`
}
