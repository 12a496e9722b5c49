package request

// CreateAccountRequest は口座作成リクエストです
// ownerIdを省略した場合は呼び出しサブジェクトが所有者となる
type CreateAccountRequest struct {
	OwnerID       *string `json:"ownerId" validate:"omitempty,uuid"`
	InstitutionID string  `json:"institutionId" validate:"required,uuid"`
	Name          string  `json:"name" validate:"required,min=1,max=255"`
	Type          string  `json:"type" validate:"required,oneof=checking savings brokerage credit loan cash"`
	Currency      string  `json:"currency" validate:"required,currency"`
}

// UpdateAccountRequest は口座更新リクエストです
// 省略されたフィールドは変更されない
type UpdateAccountRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=255"`
	Type          *string `json:"type" validate:"omitempty,oneof=checking savings brokerage credit loan cash"`
	InstitutionID *string `json:"institutionId" validate:"omitempty,uuid"`
}
