package cache

import "fmt"

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	// レート制限
	PrefixRateLimit KeyPrefix = "ratelimit" // ratelimit:{type}:{identifier}

	// ページネーションカーソルの署名鍵
	PrefixCursorKey KeyPrefix = "cursor:signing_key"
)

// RateLimitKey はレート制限キーを生成します
func RateLimitKey(limitType, identifier string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixRateLimit, limitType, identifier)
}

// CursorKeyName はカーソル署名鍵のキーを返します
func CursorKeyName() string {
	return string(PrefixCursorKey)
}
