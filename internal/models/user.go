// Package models はAPIとデータベースで共有されるデータ構造を定義します。
package models

import "time"

// User はユーザーのデータベース構造体を表します。
// PasswordHash は万一そのままシリアライズされても漏れないよう json:"-" を付けていますが、
// レスポンスには必ず Public() の射影を使います。
type User struct {
	ID           int       `json:"id,omitempty"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser はクライアントに返すユーザーの公開ビューです。
// 認証情報 (password_hash) を含みません。
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Public はレスポンス用の公開ビューを返します。
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}

// UserRegisterRequest はユーザー登録リクエストの構造体です。
type UserRegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserLoginRequest はユーザーログインリクエストの構造体です。
type UserLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
