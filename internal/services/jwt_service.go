// Package services はビジネスロジック層を提供します。
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired は有効期限切れのトークンに対するエラーです。
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid は署名不正・形式不正のトークンに対するエラーです。
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims はJWTに埋め込むユーザー情報です。
// ペイロードは {id, username, exp} の形になります。
type Claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService はJWTトークンの生成と検証を扱います。
// シークレットは設定層で検証済みのものを受け取ります (環境変数を直接読まない)。
type JWTService struct {
	secret []byte
}

// NewJWTService は新しいJWTServiceを作成します。
func NewJWTService(secret []byte) *JWTService {
	return &JWTService{secret: secret}
}

// GenerateToken は24時間有効なJWTトークンを生成します。
func (s *JWTService) GenerateToken(userID int, username string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken はJWTトークンを検証し、クレームを返します。
// 期限切れは ErrTokenExpired、それ以外の検証失敗は ErrTokenInvalid になります。
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
