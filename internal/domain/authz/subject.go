package authz

import "github.com/google/uuid"

// Subject は認証済みの呼び出し主体を表します
// トークン検証は上流で完了しており、ここでは検証済みの入力として扱う
// IDはOwnスコープ操作の所有者述語のキーとして使用される
type Subject struct {
	ID    uuid.UUID
	Email string
	Roles []string
}

// NewSubject は新しいSubjectを作成します
func NewSubject(id uuid.UUID, email string, roles []string) Subject {
	return Subject{
		ID:    id,
		Email: email,
		Roles: roles,
	}
}

// HasRole は指定されたロールを持つかを判定します
func (s Subject) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
