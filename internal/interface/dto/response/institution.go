package response

import (
	"time"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// InstitutionResponse は金融機関レスポンスです
type InstitutionResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewInstitutionResponse はエンティティからInstitutionResponseを作成します
func NewInstitutionResponse(institution *entity.Institution) InstitutionResponse {
	return InstitutionResponse{
		ID:        institution.ID.String(),
		OwnerID:   institution.OwnerID.String(),
		Name:      institution.Name,
		Kind:      string(institution.Kind),
		Country:   institution.Country,
		CreatedAt: institution.CreatedAt,
		UpdatedAt: institution.UpdatedAt,
	}
}

// NewInstitutionListResponse はエンティティのスライスからレスポンスのスライスを作成します
func NewInstitutionListResponse(institutions []*entity.Institution) []InstitutionResponse {
	responses := make([]InstitutionResponse, 0, len(institutions))
	for _, institution := range institutions {
		responses = append(responses, NewInstitutionResponse(institution))
	}
	return responses
}
