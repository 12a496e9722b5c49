package response

import (
	"time"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// AccountResponse は口座レスポンスです
type AccountResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	InstitutionID string    `json:"institutionId"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewAccountResponse はエンティティからAccountResponseを作成します
func NewAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID.String(),
		OwnerID:       account.OwnerID.String(),
		InstitutionID: account.InstitutionID.String(),
		Name:          account.Name,
		Type:          string(account.Type),
		Currency:      account.Currency.String(),
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}

// NewAccountListResponse はエンティティのスライスからレスポンスのスライスを作成します
func NewAccountListResponse(accounts []*entity.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAccountResponse(account))
	}
	return responses
}
