package response

import (
	"time"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
)

// UserResponse はユーザーレスポンスです
// パスワードハッシュは決して載せない
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse はエンティティからUserResponseを作成します
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email.String(),
		Name:      user.Name,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserListResponse はエンティティのスライスからレスポンスのスライスを作成します
func NewUserListResponse(users []*entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}
