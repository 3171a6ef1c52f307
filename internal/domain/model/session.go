package model

import "time"

// 外部ストアを呼ぶための認可クレデンシャル。
// 期限切れでもRefreshTokenがあれば同じセッションのまま更新できる。
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

// 期限切れか（Expiryゼロ値は無期限扱い）
func (c Credential) Expired(now time.Time) bool {
	if c.Expiry.IsZero() {
		return false
	}
	return !now.Before(c.Expiry)
}

// ログイン成功で発行するセッション。
// Token→Emailの対応は作成後に変わらない。Credentialだけ差し替え可。
type Session struct {
	Token      string     `json:"token"`
	Email      string     `json:"email"`
	Credential Credential `json:"credential"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Sessionsタブの1行（ログインの追記ログ）
type SessionRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Token     string    `gorm:"type:varchar(64);not null;index" json:"token"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
}
