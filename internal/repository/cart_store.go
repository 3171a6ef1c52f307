package repository

import (
	"context"

	"pos/internal/domain/model"
)

// セッション単位のカート置き場。
// カートは永続データではないので、実装はメモリかTTL付きRedisのどちらか。
type CartStore interface {
	// 無ければ空カートを返す
	Get(ctx context.Context, token string) (model.Cart, error)
	Save(ctx context.Context, token string, cart model.Cart) error
	Delete(ctx context.Context, token string) error
}
