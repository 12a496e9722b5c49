package response

import (
	"time"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// TransactionResponse は取引レスポンスです
type TransactionResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	AccountID   string    `json:"accountId"`
	AssetID     *string   `json:"assetId,omitempty"`
	Kind        string    `json:"kind"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Quantity    int64     `json:"quantity"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurredAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTransactionResponse はエンティティからTransactionResponseを作成します
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	var assetID *string
	if transaction.AssetID != nil {
		s := transaction.AssetID.String()
		assetID = &s
	}

	return TransactionResponse{
		ID:          transaction.ID.String(),
		OwnerID:     transaction.OwnerID.String(),
		AccountID:   transaction.AccountID.String(),
		AssetID:     assetID,
		Kind:        string(transaction.Kind),
		Amount:      transaction.Amount.Amount(),
		Currency:    transaction.Amount.Currency().String(),
		Quantity:    transaction.Quantity,
		Description: transaction.Description,
		OccurredAt:  transaction.OccurredAt,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// NewTransactionListResponse はエンティティのスライスからレスポンスのスライスを作成します
func NewTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, NewTransactionResponse(transaction))
	}
	return responses
}
