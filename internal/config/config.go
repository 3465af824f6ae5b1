// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config はサーバー起動に必要な設定値を保持します。
// JWT_SECRET 以外はすべてデフォルト値を持ちます。
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:3000"`

	// JWT署名のためのシークレットキー。必須項目。
	// 既知のデフォルト値へのフォールバックはセキュリティリスクのため行わない。
	JWTSecret string `env:"JWT_SECRET"`

	// DBDriver は "mysql" (本番) または "sqlite3" (開発・テスト) を指定します。
	DBDriver   string `env:"DB_DRIVER" env-default:"mysql"`
	DBUser     string `env:"DB_USER" env-default:"root"`
	DBPass     string `env:"DB_PASS" env-default:""`
	DBHost     string `env:"DB_HOST" env-default:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" env-default:"3306"`
	DBName     string `env:"DB_NAME" env-default:"taskmanager"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"taskmanager.db"`
}

// Load は環境変数を読み込み、設定値を検証します。
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "sqlite3" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite3)", cfg.DBDriver)
	}
	return &cfg, nil
}

// DSN はDBDriverに応じた接続文字列を組み立てます。
// 例 (mysql): user:pass@tcp(db:3306)/dbname?parseTime=true
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite3" {
		return c.SQLitePath
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
