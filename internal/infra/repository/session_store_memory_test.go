package repository

import (
	"context"
	"testing"
	"time"

	"pos/internal/domain/model"
	repo "pos/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestSessionMemoryStore_FindMissing(t *testing.T) {
	s := NewSessionMemoryStore()

	_, err := s.Find(context.Background(), "none")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// Credentialを差し替えてもToken→Emailの対応は変わらない
func TestSessionMemoryStore_UpdateCredentialKeepsBinding(t *testing.T) {
	s := NewSessionMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, model.Session{
		Token:      "tok",
		Email:      "staff@example.com",
		Credential: model.Credential{AccessToken: "old"},
		CreatedAt:  time.Now(),
	}))

	assert.NoError(t, s.UpdateCredential(ctx, "tok", model.Credential{AccessToken: "new"}))

	sess, err := s.Find(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, "staff@example.com", sess.Email)
	assert.Equal(t, "new", sess.Credential.AccessToken)
}

func TestSessionMemoryStore_UpdateCredentialMissing(t *testing.T) {
	s := NewSessionMemoryStore()

	err := s.UpdateCredential(context.Background(), "none", model.Credential{})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSessionMemoryStore_Delete(t *testing.T) {
	s := NewSessionMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Save(ctx, model.Session{Token: "tok", Email: "a@b.c"}))
	assert.NoError(t, s.Delete(ctx, "tok"))
	assert.ErrorIs(t, s.Delete(ctx, "tok"), repo.ErrNotFound)
}
