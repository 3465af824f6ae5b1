// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"fmt"

	"golang.org/x/crypto/bcrypt" // パスワードのハッシュ化用
)

// HashPassword は与えられたパスワードをbcryptでハッシュ化します。
// ソルトはbcryptがハッシュごとに生成して埋め込みます。
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// VerifyPassword はハッシュ化されたパスワードと平文のパスワードを比較します。
// 不正な形式のハッシュもエラーとして返すだけで、パニックにはなりません。
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
