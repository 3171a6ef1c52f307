package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pos/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// 複数プロセス運用向け。カートはJSONで持ち、TTLで勝手に消える。
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    2 * time.Hour,
	}
}

func (s *RedisStore) Get(ctx context.Context, token string) (model.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Cart{Token: token, Lines: []model.CartLine{}}, nil
	}
	if err != nil {
		return model.Cart{}, fmt.Errorf("redis get failed: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return model.Cart{}, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = []model.CartLine{}
	}
	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, cart model.Cart) error {
	cart.Token = token

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, cartKey(token)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(token string) string {
	return fmt.Sprintf("cart:%s", token)
}
