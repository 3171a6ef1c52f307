package repository

import (
	"context"
	"sync"

	"pos/internal/domain/model"
	repo "pos/internal/repository"
)

// トークン→セッションのインメモリ実装。
// 読み書きとも同じロックで守る（refresh後の書き戻しを含む）。
type SessionMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{
		sessions: make(map[string]model.Session),
	}
}

func (s *SessionMemoryStore) Find(ctx context.Context, token string) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return model.Session{}, repo.ErrNotFound
	}
	return sess, nil
}

func (s *SessionMemoryStore) Save(ctx context.Context, sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.Token] = sess
	return nil
}

func (s *SessionMemoryStore) UpdateCredential(ctx context.Context, token string, cred model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return repo.ErrNotFound
	}

	//Token→Emailはそのまま、Credentialだけ差し替え
	sess.Credential = cred
	s.sessions[token] = sess
	return nil
}

func (s *SessionMemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return repo.ErrNotFound
	}
	delete(s.sessions, token)
	return nil
}
