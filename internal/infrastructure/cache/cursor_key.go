package cache

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const cursorKeyBytes = 32

// CursorKeyCache はページネーションカーソルの署名鍵を管理します
// 鍵の実体はRedisで共有され、各プロセスは期限付きでローカルに保持する
// 期限切れで再取得し、Redisに鍵がなければ生成してSetNXで収束させる
type CursorKeyCache struct {
	client   *redis.Client
	ttl      time.Duration // Redis上の鍵の生存時間
	localTTL time.Duration // ローカル保持の上限

	mu        sync.Mutex
	key       []byte
	expiresAt time.Time
}

// NewCursorKeyCache は新しいCursorKeyCacheを作成します
func NewCursorKeyCache(client *redis.Client, ttl time.Duration) *CursorKeyCache {
	localTTL := ttl / 10
	if localTTL > time.Minute {
		localTTL = time.Minute
	}
	return &CursorKeyCache{
		client:   client,
		ttl:      ttl,
		localTTL: localTTL,
	}
}

// Current は現在有効な署名鍵を返します
func (c *CursorKeyCache) Current(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key != nil && time.Now().Before(c.expiresAt) {
		return c.key, nil
	}

	key, err := c.fetchOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	c.key = key
	c.expiresAt = time.Now().Add(c.localTTL)
	return key, nil
}

// Invalidate はローカルに保持した鍵を破棄します
// 次のCurrent呼び出しでRedisから再取得される
func (c *CursorKeyCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = nil
	c.expiresAt = time.Time{}
}

func (c *CursorKeyCache) fetchOrCreate(ctx context.Context) ([]byte, error) {
	val, err := c.client.Get(ctx, CursorKeyName()).Bytes()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to fetch cursor signing key: %w", err)
	}

	fresh := make([]byte, cursorKeyBytes)
	if _, err := rand.Read(fresh); err != nil {
		return nil, fmt.Errorf("failed to generate cursor signing key: %w", err)
	}

	ok, err := c.client.SetNX(ctx, CursorKeyName(), fresh, c.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store cursor signing key: %w", err)
	}
	if ok {
		return fresh, nil
	}

	// 別プロセスが先に設定した場合はその鍵を採用する
	val, err = c.client.Get(ctx, CursorKeyName()).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cursor signing key: %w", err)
	}
	return val, nil
}
