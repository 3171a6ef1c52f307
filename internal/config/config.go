package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // DB接続文字列（あれば個別変数より優先）
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート（5432）

	OAuthClientID     string // GoogleのクライアントID
	OAuthClientSecret string // Googleのクライアントシークレット
	OAuthRedirectURL  string // コールバックURL
	OAuthIssuer       string // IDトークンのiss
	IDTokenSecret     string // IDトークン検証鍵（devはHMAC）

	OrderIDStrategy string // random / sequential（sequentialは単一プロセス運用のみ）
	RedisAddr       string // 空ならカートはメモリ

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     os.Getenv("POSTGRES_PORT"),

		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:  os.Getenv("OAUTH_REDIRECT_URL"),
		OAuthIssuer:       os.Getenv("OAUTH_ISSUER"),
		IDTokenSecret:     os.Getenv("ID_TOKEN_SECRET"),

		OrderIDStrategy: os.Getenv("ORDER_ID_STRATEGY"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),

		GoEnv: os.Getenv("GO_ENV"),
	}

	//デフォルト
	if cfg.OrderIDStrategy == "" {
		cfg.OrderIDStrategy = "random"
	}
	if cfg.OAuthIssuer == "" {
		cfg.OAuthIssuer = "https://accounts.google.com"
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.DatabaseURL == "" && cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("DATABASE_URL or POSTGRES_HOST is required")
	}
	if cfg.OAuthClientID == "" {
		return Config{}, fmt.Errorf("OAUTH_CLIENT_ID is required")
	}
	if cfg.OAuthClientSecret == "" {
		return Config{}, fmt.Errorf("OAUTH_CLIENT_SECRET is required")
	}
	if cfg.OAuthRedirectURL == "" {
		return Config{}, fmt.Errorf("OAUTH_REDIRECT_URL is required")
	}
	if cfg.IDTokenSecret == "" {
		return Config{}, fmt.Errorf("ID_TOKEN_SECRET is required")
	}
	if cfg.OrderIDStrategy != "random" && cfg.OrderIDStrategy != "sequential" {
		return Config{}, fmt.Errorf("ORDER_ID_STRATEGY must be random or sequential")
	}

	return cfg, nil
}
