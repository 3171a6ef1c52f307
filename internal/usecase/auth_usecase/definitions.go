package auth

import (
	"context"
	"time"

	"pos/internal/domain/model"
)

// ランダムトークンを作る約束（実体はmainのuuid）
type IDGenerator interface {
	NewID() string
}

// 現在時刻を返す約束
type Clock interface {
	Now() time.Time
}

// 認可コードフローのプロバイダ側の約束。
// Exchangeは認可コードをクレデンシャルとIDトークン（生JWT）に交換する。
type OAuthClient interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (model.Credential, string, error)
	Refresh(ctx context.Context, cred model.Credential) (model.Credential, error)
}

// IDトークンの署名・発行者・audを検証してemailを取り出す約束
type IDTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (string, error)
}
