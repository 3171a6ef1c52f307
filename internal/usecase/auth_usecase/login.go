package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"pos/internal/domain/model"
	"pos/internal/repository"
)

// 発行したstateと返ってきたstateが一致しない
var ErrInvalidState = errors.New("invalid state")

// プロバイダが認可コードを拒否した
var ErrAuthExchange = errors.New("auth exchange failed")

// stateの有効期限。これを過ぎたらログインやり直し
const stateTTL = 10 * time.Minute

// LoginUsecase はGoogleログインの往路・復路を実行します。
// stateはサーバー側で持ち、コールバックで突き合わせる（使い捨て）。
type LoginUsecase struct {
	oauth      OAuthClient
	verifier   IDTokenVerifier
	sessions   repository.SessionStore
	sessionLog repository.SessionLogRepository
	idGen      IDGenerator
	clock      Clock

	mu     sync.Mutex
	states map[string]time.Time
}

func NewLoginUsecase(
	oauth OAuthClient,
	verifier IDTokenVerifier,
	sessions repository.SessionStore,
	sessionLog repository.SessionLogRepository,
	idGen IDGenerator,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		oauth:      oauth,
		verifier:   verifier,
		sessions:   sessions,
		sessionLog: sessionLog,
		idGen:      idGen,
		clock:      clock,
		states:     make(map[string]time.Time),
	}
}

// handlerがCookieに詰めるために必要な値
type SessionOutput struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// LoginRedirect は認可URLを作る。stateは都度発行して控えておく。
func (u *LoginUsecase) LoginRedirect(ctx context.Context) (string, error) {
	state := u.idGen.NewID()

	u.mu.Lock()
	u.states[state] = u.clock.Now().Add(stateTTL)
	u.mu.Unlock()

	return u.oauth.AuthCodeURL(state), nil
}

// CompleteLogin はコールバックを処理してセッションを発行する。
// state不一致ならセッションは作らない。
func (u *LoginUsecase) CompleteLogin(ctx context.Context, code string, state string) (SessionOutput, error) {
	if !u.consumeState(state) {
		return SessionOutput{}, ErrInvalidState
	}

	//認可コード交換
	cred, rawIDToken, err := u.oauth.Exchange(ctx, code)
	if err != nil {
		return SessionOutput{}, ErrAuthExchange
	}

	//IDトークン検証→email
	email, err := u.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return SessionOutput{}, ErrAuthExchange
	}

	//セッション発行
	now := u.clock.Now()
	sess := model.Session{
		Token:      u.idGen.NewID(),
		Email:      email,
		Credential: cred,
		CreatedAt:  now,
	}

	if err := u.sessions.Save(ctx, sess); err != nil {
		return SessionOutput{}, err
	}

	//Sessionsタブへ追記（失敗してもログインは成立させる）
	_ = u.sessionLog.Append(ctx, model.SessionRecord{
		Timestamp: now,
		Token:     sess.Token,
		Email:     email,
	})

	return SessionOutput{Token: sess.Token, Email: email}, nil
}

// stateを1回ぶん消費する。未発行・期限切れはfalse
func (u *LoginUsecase) consumeState(state string) bool {
	if state == "" {
		return false
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	exp, ok := u.states[state]
	if !ok {
		return false
	}
	delete(u.states, state)

	return u.clock.Now().Before(exp)
}
