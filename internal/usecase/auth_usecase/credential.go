package auth

import (
	"context"
	"errors"

	"pos/internal/domain/model"
	"pos/internal/repository"
)

// セッションが無い・無効
var ErrUnauthenticated = errors.New("unauthenticated")

// 期限切れでrefresh tokenも無い。再ログインしかない
var ErrCredentialExpired = errors.New("credential expired")

// CredentialUsecase は外部ストア呼び出し前のクレデンシャル取得です。
// 期限切れならその場でrefreshして同じトークンのまま差し替える。
type CredentialUsecase struct {
	oauth    OAuthClient
	sessions repository.SessionStore
	clock    Clock
}

func NewCredentialUsecase(
	oauth OAuthClient,
	sessions repository.SessionStore,
	clock Clock,
) *CredentialUsecase {
	return &CredentialUsecase{
		oauth:    oauth,
		sessions: sessions,
		clock:    clock,
	}
}

// CurrentCredential は有効なクレデンシャルを返す。
func (u *CredentialUsecase) CurrentCredential(ctx context.Context, token string) (model.Credential, error) {
	sess, err := u.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Credential{}, ErrUnauthenticated
		}
		return model.Credential{}, err
	}

	cred := sess.Credential
	if !cred.Expired(u.clock.Now()) {
		return cred, nil
	}

	//期限切れ。refresh tokenが無ければ再ログインへ
	if cred.RefreshToken == "" {
		return model.Credential{}, ErrCredentialExpired
	}

	refreshed, err := u.oauth.Refresh(ctx, cred)
	if err != nil {
		return model.Credential{}, ErrCredentialExpired
	}

	//同じセッションのままクレデンシャルだけ書き戻す
	if err := u.sessions.UpdateCredential(ctx, token, refreshed); err != nil {
		return model.Credential{}, err
	}

	return refreshed, nil
}

// Logout はセッションを破棄する。以降の操作はunauthenticatedになる。
func (u *CredentialUsecase) Logout(ctx context.Context, token string) error {
	err := u.sessions.Delete(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUnauthenticated
	}
	return err
}
