package repository

import "github.com/google/uuid"

// OwnerScope はデータアクセスに注入される所有者述語を表します
// Ownスコープの操作では owner_id = サブジェクトID の条件が
// 全ての読み取り・更新・削除条件にマージされる
// Allスコープでは条件を付与しない
type OwnerScope struct {
	ownerID *uuid.UUID
}

// ScopeAll は所有者制限なしのスコープを返します
func ScopeAll() OwnerScope {
	return OwnerScope{}
}

// ScopeOwner は指定サブジェクト所有の行に制限するスコープを返します
func ScopeOwner(ownerID uuid.UUID) OwnerScope {
	return OwnerScope{ownerID: &ownerID}
}

// OwnerID は所有者IDと制限の有無を返します
func (s OwnerScope) OwnerID() (uuid.UUID, bool) {
	if s.ownerID == nil {
		return uuid.Nil, false
	}
	return *s.ownerID, true
}

// IsRestricted は所有者制限付きスコープかを判定します
func (s OwnerScope) IsRestricted() bool {
	return s.ownerID != nil
}
