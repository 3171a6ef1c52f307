package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pos/internal/domain/model"
	infraRepo "pos/internal/infra/repository"
	"pos/internal/repository"
	auth "pos/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
)

func seedSession(t *testing.T, sessions repository.SessionStore, cred model.Credential) model.Session {
	t.Helper()
	sess := model.Session{
		Token:      "tok-1",
		Email:      "staff@example.com",
		Credential: cred,
		CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, sessions.Save(context.Background(), sess))
	return sess
}

func TestCredentialUsecase_ValidCredentialPassesThrough(t *testing.T) {
	sessions := infraRepo.NewSessionMemoryStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	seedSession(t, sessions, model.Credential{
		AccessToken: "at",
		Expiry:      clock.now.Add(time.Hour),
	})

	uc := auth.NewCredentialUsecase(&fakeOAuthClient{}, sessions, clock)

	cred, err := uc.CurrentCredential(context.Background(), "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "at", cred.AccessToken)
}

// 期限切れ＋refresh tokenあり→期限が先のクレデンシャルに差し替わる。トークンはそのまま
func TestCredentialUsecase_RefreshesExpiredInPlace(t *testing.T) {
	sessions := infraRepo.NewSessionMemoryStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	oldExpiry := clock.now.Add(-time.Minute)
	seedSession(t, sessions, model.Credential{
		AccessToken:  "old-at",
		RefreshToken: "rt",
		Expiry:       oldExpiry,
	})

	oauth := &fakeOAuthClient{
		refreshed: model.Credential{
			AccessToken:  "new-at",
			RefreshToken: "rt",
			Expiry:       clock.now.Add(time.Hour),
		},
	}
	uc := auth.NewCredentialUsecase(oauth, sessions, clock)
	ctx := context.Background()

	cred, err := uc.CurrentCredential(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "new-at", cred.AccessToken)
	assert.True(t, cred.Expiry.After(oldExpiry))

	//同じトークンで引けて、書き戻しも済んでいる
	sess, err := sessions.Find(ctx, "tok-1")
	assert.NoError(t, err)
	assert.Equal(t, "staff@example.com", sess.Email)
	assert.Equal(t, "new-at", sess.Credential.AccessToken)
}

// 期限切れでrefresh tokenが無ければ再ログインしかない
func TestCredentialUsecase_ExpiredWithoutRefresh(t *testing.T) {
	sessions := infraRepo.NewSessionMemoryStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	seedSession(t, sessions, model.Credential{
		AccessToken: "old-at",
		Expiry:      clock.now.Add(-time.Minute),
	})

	uc := auth.NewCredentialUsecase(&fakeOAuthClient{}, sessions, clock)

	_, err := uc.CurrentCredential(context.Background(), "tok-1")
	assert.ErrorIs(t, err, auth.ErrCredentialExpired)
}

func TestCredentialUsecase_RefreshFailure(t *testing.T) {
	sessions := infraRepo.NewSessionMemoryStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	seedSession(t, sessions, model.Credential{
		AccessToken:  "old-at",
		RefreshToken: "rt",
		Expiry:       clock.now.Add(-time.Minute),
	})

	oauth := &fakeOAuthClient{refreshErr: errors.New("revoked")}
	uc := auth.NewCredentialUsecase(oauth, sessions, clock)

	_, err := uc.CurrentCredential(context.Background(), "tok-1")
	assert.ErrorIs(t, err, auth.ErrCredentialExpired)
}

func TestCredentialUsecase_UnknownToken(t *testing.T) {
	sessions := infraRepo.NewSessionMemoryStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	uc := auth.NewCredentialUsecase(&fakeOAuthClient{}, sessions, clock)

	_, err := uc.CurrentCredential(context.Background(), "nope")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

// ログアウト後は同じトークンでの操作が全部unauthenticatedになる
func TestCredentialUsecase_LogoutInvalidatesToken(t *testing.T) {
	sessions := infraRepo.NewSessionMemoryStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	seedSession(t, sessions, model.Credential{
		AccessToken: "at",
		Expiry:      clock.now.Add(time.Hour),
	})

	uc := auth.NewCredentialUsecase(&fakeOAuthClient{}, sessions, clock)
	ctx := context.Background()

	assert.NoError(t, uc.Logout(ctx, "tok-1"))

	_, err := uc.CurrentCredential(ctx, "tok-1")
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	//二重ログアウトもunauthenticated
	assert.ErrorIs(t, uc.Logout(ctx, "tok-1"), auth.ErrUnauthenticated)
}
