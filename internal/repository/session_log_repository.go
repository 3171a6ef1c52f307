package repository

import (
	"context"

	"pos/internal/domain/model"
)

// Sessionsタブ相当の追記ログ
type SessionLogRepository interface {
	Append(ctx context.Context, rec model.SessionRecord) error
}
