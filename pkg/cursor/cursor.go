package cursor

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCursor は不正なカーソルトークンを表すエラーです
var ErrInvalidCursor = errors.New("invalid cursor")

// KeySource は署名鍵の供給元を表します
type KeySource interface {
	Current(ctx context.Context) ([]byte, error)
}

// Codec はページネーションカーソルの符号化を提供します
// カーソルはオフセットをHMAC-SHA256で署名した不透明トークンで、
// クライアントによる改変を検出できる
type Codec struct {
	keys KeySource
}

// NewCodec は新しいCodecを作成します
func NewCodec(keys KeySource) *Codec {
	return &Codec{keys: keys}
}

// Encode はオフセットをカーソルトークンに符号化します
func (c *Codec) Encode(ctx context.Context, offset int) (string, error) {
	key, err := c.keys.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain cursor key: %w", err)
	}

	payload := strconv.Itoa(offset)
	sig := sign(key, payload)
	token := payload + "." + base64.RawURLEncoding.EncodeToString(sig)
	return base64.RawURLEncoding.EncodeToString([]byte(token)), nil
}

// Decode はカーソルトークンを検証し、オフセットを返します
func (c *Codec) Decode(ctx context.Context, token string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidCursor
	}

	payload, encodedSig, found := strings.Cut(string(raw), ".")
	if !found {
		return 0, ErrInvalidCursor
	}
	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return 0, ErrInvalidCursor
	}

	key, err := c.keys.Current(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to obtain cursor key: %w", err)
	}
	if !hmac.Equal(sig, sign(key, payload)) {
		return 0, ErrInvalidCursor
	}

	offset, err := strconv.Atoi(payload)
	if err != nil || offset < 0 {
		return 0, ErrInvalidCursor
	}
	return offset, nil
}

func sign(key []byte, payload string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
