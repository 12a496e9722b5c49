package response

import (
	"time"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// AssetResponse は資産レスポンスです
type AssetResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Class     string    `json:"class"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAssetResponse はエンティティからAssetResponseを作成します
func NewAssetResponse(asset *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:        asset.ID.String(),
		OwnerID:   asset.OwnerID.String(),
		Symbol:    asset.Symbol,
		Name:      asset.Name,
		Class:     string(asset.Class),
		Currency:  asset.Currency.String(),
		CreatedAt: asset.CreatedAt,
		UpdatedAt: asset.UpdatedAt,
	}
}

// NewAssetListResponse はエンティティのスライスからレスポンスのスライスを作成します
func NewAssetListResponse(assets []*entity.Asset) []AssetResponse {
	responses := make([]AssetResponse, 0, len(assets))
	for _, asset := range assets {
		responses = append(responses, NewAssetResponse(asset))
	}
	return responses
}
