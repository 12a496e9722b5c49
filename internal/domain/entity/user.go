package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
)

// UserStatus はユーザーの状態を定義します
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusSuspended   UserStatus = "suspended"
	UserStatusDeactivated UserStatus = "deactivated"
)

// IsValid は状態が有効かを判定します
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended, UserStatusDeactivated:
		return true
	default:
		return false
	}
}

// User はユーザーエンティティを定義します
// 権限モデル上、ユーザーは自分自身を所有する（OwnerID == ID）
type User struct {
	ID        uuid.UUID
	Email     valueobject.Email
	Name      string
	Password  valueobject.Password
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser は新しいユーザーを作成します
func NewUser(email valueobject.Email, name string, password valueobject.Password) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Password:  password,
		Status:    UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ReconstructUser はDBからユーザーを復元します
func ReconstructUser(
	id uuid.UUID,
	email valueobject.Email,
	name string,
	password valueobject.Password,
	status UserStatus,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		ID:        id,
		Email:     email,
		Name:      name,
		Password:  password,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Rename は表示名を変更します
func (u *User) Rename(name string) {
	u.Name = name
	u.UpdatedAt = time.Now()
}

// Suspend はユーザーを停止します
func (u *User) Suspend() {
	u.Status = UserStatusSuspended
	u.UpdatedAt = time.Now()
}

// ChangeStatus はユーザーの状態を変更します
func (u *User) ChangeStatus(status UserStatus) {
	u.Status = status
	u.UpdatedAt = time.Now()
}

// IsActive はユーザーがアクティブかを判定します
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsOwnedBy は指定されたサブジェクトが所有者（本人）かを判定します
func (u *User) IsOwnedBy(subjectID uuid.UUID) bool {
	return u.ID == subjectID
}
