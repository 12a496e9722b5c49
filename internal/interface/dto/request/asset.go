package request

// CreateAssetRequest は資産作成リクエストです
type CreateAssetRequest struct {
	OwnerID  *string `json:"ownerId" validate:"omitempty,uuid"`
	Symbol   string  `json:"symbol" validate:"required,symbol"`
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Class    string  `json:"class" validate:"required,oneof=equity bond fund crypto commodity cash"`
	Currency string  `json:"currency" validate:"required,currency"`
}

// UpdateAssetRequest は資産更新リクエストです
type UpdateAssetRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Class *string `json:"class" validate:"omitempty,oneof=equity bond fund crypto commodity cash"`
}
