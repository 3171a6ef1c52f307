package repository

import (
	"context"

	"pos/internal/domain/model"

	"gorm.io/gorm"
)

// Sessionsタブ相当の追記ログ（ログイン監査用）
type SessionLogGormRepository struct {
	db *gorm.DB
}

// DI
func NewSessionLogGormRepository(db *gorm.DB) *SessionLogGormRepository {
	return &SessionLogGormRepository{db: db}
}

func (r *SessionLogGormRepository) Append(ctx context.Context, rec model.SessionRecord) error {
	return r.db.WithContext(ctx).Create(&rec).Error
}
