package cartstore

import (
	"context"
	"sync"

	"pos/internal/domain/model"
)

// 1プロセス運用向けのカート置き場。
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]model.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]model.Cart),
	}
}

// 無ければ空カートを返す
func (s *MemoryStore) Get(ctx context.Context, token string) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[token]
	if !ok {
		return model.Cart{Token: token, Lines: []model.CartLine{}}, nil
	}

	//呼び出し側の書き換えが共有状態に漏れないようコピーを返す
	lines := make([]model.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	cart.Lines = lines
	return cart, nil
}

func (s *MemoryStore) Save(ctx context.Context, token string, cart model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]model.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)
	cart.Token = token
	cart.Lines = lines
	s.carts[token] = cart
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
	return nil
}
