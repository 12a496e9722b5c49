package request

// CreateInstitutionRequest は金融機関作成リクエストです
type CreateInstitutionRequest struct {
	OwnerID *string `json:"ownerId" validate:"omitempty,uuid"`
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Kind    string  `json:"kind" validate:"required,oneof=bank brokerage exchange insurer other"`
	Country string  `json:"country" validate:"required,country"`
}

// UpdateInstitutionRequest は金融機関更新リクエストです
type UpdateInstitutionRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Kind    *string `json:"kind" validate:"omitempty,oneof=bank brokerage exchange insurer other"`
	Country *string `json:"country" validate:"omitempty,country"`
}
