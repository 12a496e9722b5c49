package cursor

import (
	"context"
	"testing"
)

type staticKeySource struct {
	key []byte
}

func (s staticKeySource) Current(ctx context.Context) ([]byte, error) {
	return s.key, nil
}

func TestCodec_EncodeDecode_RoundTrip(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec(staticKeySource{key: []byte("0123456789abcdef0123456789abcdef")})

	for _, offset := range []int{0, 1, 20, 4000} {
		token, err := codec.Encode(ctx, offset)
		if err != nil {
			t.Fatalf("Encode(%d) failed: %v", offset, err)
		}

		got, err := codec.Decode(ctx, token)
		if err != nil {
			t.Fatalf("Decode failed for offset %d: %v", offset, err)
		}
		if got != offset {
			t.Errorf("expected offset %d, got %d", offset, got)
		}
	}
}

func TestCodec_Decode_TamperedTokenRejected(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec(staticKeySource{key: []byte("0123456789abcdef0123456789abcdef")})

	token, err := codec.Encode(ctx, 40)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// 先頭バイトを書き換える
	tampered := "A" + token[1:]
	if _, err := codec.Decode(ctx, tampered); err == nil {
		t.Error("expected tampered cursor to be rejected")
	}
}

func TestCodec_Decode_DifferentKeyRejected(t *testing.T) {
	ctx := context.Background()
	encoder := NewCodec(staticKeySource{key: []byte("0123456789abcdef0123456789abcdef")})
	decoder := NewCodec(staticKeySource{key: []byte("ffffffffffffffffffffffffffffffff")})

	token, err := encoder.Encode(ctx, 20)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := decoder.Decode(ctx, token); err != ErrInvalidCursor {
		t.Errorf("expected ErrInvalidCursor, got %v", err)
	}
}

func TestCodec_Decode_GarbageRejected(t *testing.T) {
	ctx := context.Background()
	codec := NewCodec(staticKeySource{key: []byte("0123456789abcdef0123456789abcdef")})

	for _, token := range []string{"", "not-base64!", "YWJj"} {
		if _, err := codec.Decode(ctx, token); err == nil {
			t.Errorf("expected cursor %q to be rejected", token)
		}
	}
}
