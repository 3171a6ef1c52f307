package repository

import (
	"context"

	"pos/internal/domain/model"
)

// トークン→セッションの対応を持つ。
// 実装側がロックの責任を持つ（グローバル変数のmapにはしない）。
type SessionStore interface {
	// 無ければ ErrNotFound
	Find(ctx context.Context, token string) (model.Session, error)
	Save(ctx context.Context, sess model.Session) error
	// Credentialだけ差し替える（Token→Emailは変えない）
	UpdateCredential(ctx context.Context, token string, cred model.Credential) error
	Delete(ctx context.Context, token string) error
}
