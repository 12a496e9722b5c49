package authz

import "errors"

var (
	ErrInvalidLevel = errors.New("invalid action level")
)

// ReadLevel は読み取り操作のスコープレベルを表す型
// None < Own < All の順にアクセス可能な行集合が広がるが、
// レベルは数値的な閾値ではなく、それぞれが独立したコードパスに対応する
type ReadLevel string

const (
	ReadNone ReadLevel = "none"
	ReadOwn  ReadLevel = "own"
	ReadAll  ReadLevel = "all"
)

// CreateLevel は作成操作のスコープレベルを表す型
type CreateLevel string

const (
	CreateNone CreateLevel = "none"
	CreateOwn  CreateLevel = "own"
	CreateAll  CreateLevel = "all"
)

// UpdateLevel は更新操作のスコープレベルを表す型
type UpdateLevel string

const (
	UpdateNone UpdateLevel = "none"
	UpdateOwn  UpdateLevel = "own"
	UpdateAll  UpdateLevel = "all"
)

// DeleteLevel は削除操作のスコープレベルを表す型
type DeleteLevel string

const (
	DeleteNone DeleteLevel = "none"
	DeleteOwn  DeleteLevel = "own"
	DeleteAll  DeleteLevel = "all"
)

// IsValid はレベルが有効かを判定します
func (l ReadLevel) IsValid() bool {
	switch l {
	case ReadNone, ReadOwn, ReadAll:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (l ReadLevel) String() string {
	return string(l)
}

// IsValid はレベルが有効かを判定します
func (l CreateLevel) IsValid() bool {
	switch l {
	case CreateNone, CreateOwn, CreateAll:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (l CreateLevel) String() string {
	return string(l)
}

// IsValid はレベルが有効かを判定します
func (l UpdateLevel) IsValid() bool {
	switch l {
	case UpdateNone, UpdateOwn, UpdateAll:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (l UpdateLevel) String() string {
	return string(l)
}

// IsValid はレベルが有効かを判定します
func (l DeleteLevel) IsValid() bool {
	switch l {
	case DeleteNone, DeleteOwn, DeleteAll:
		return true
	default:
		return false
	}
}

// String は文字列を返します
func (l DeleteLevel) String() string {
	return string(l)
}
