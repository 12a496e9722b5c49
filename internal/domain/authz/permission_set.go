package authz

import "fmt"

// PermissionSet は1リクエスト・1リソース種別に対して解決された4アクションのレベル組
// リクエストごとに新しく解決され、解決後は変更されない（比較可能な値型、
// ディスパッチテーブルのキーとしてそのまま使える）
type PermissionSet struct {
	Read   ReadLevel
	Create CreateLevel
	Update UpdateLevel
	Delete DeleteLevel
}

// NewPermissionSet は新しいPermissionSetを生成します
func NewPermissionSet(read ReadLevel, create CreateLevel, update UpdateLevel, del DeleteLevel) (PermissionSet, error) {
	ps := PermissionSet{Read: read, Create: create, Update: update, Delete: del}
	if !ps.IsValid() {
		return PermissionSet{}, fmt.Errorf("%w: %s", ErrInvalidLevel, ps)
	}
	return ps, nil
}

// RestrictedPermissionSet は全アクションNoneのPermissionSetを返します
// 未知の組み合わせのフォールバック先（fail closed）
func RestrictedPermissionSet() PermissionSet {
	return PermissionSet{
		Read:   ReadNone,
		Create: CreateNone,
		Update: UpdateNone,
		Delete: DeleteNone,
	}
}

// IsValid は4レベル全てが有効かを判定します
func (ps PermissionSet) IsValid() bool {
	return ps.Read.IsValid() && ps.Create.IsValid() && ps.Update.IsValid() && ps.Delete.IsValid()
}

// IsRestricted は全アクションがNoneかを判定します
func (ps PermissionSet) IsRestricted() bool {
	return ps == RestrictedPermissionSet()
}

// String は文字列を返します
func (ps PermissionSet) String() string {
	return fmt.Sprintf("read=%s create=%s update=%s delete=%s", ps.Read, ps.Create, ps.Update, ps.Delete)
}
