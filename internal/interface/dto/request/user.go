package request

// UpdateUserRequest はユーザー更新リクエストです
// ユーザーの作成は外部のアイデンティティ基盤の責務のため、作成リクエストは存在しない
type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=255"`
	Status *string `json:"status" validate:"omitempty,oneof=active suspended deactivated"`
}
