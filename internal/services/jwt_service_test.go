package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-manager/backend/internal/services"
)

var testSecret = []byte("jwt-service-test-secret")

func TestGenerateToken_RoundTrip(t *testing.T) {
	jwtService := services.NewJWTService(testSecret)

	tokenString, err := jwtService.GenerateToken(42, "demo")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := jwtService.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "demo", claims.Username)

	// 有効期限は発行から24時間後
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_Expired(t *testing.T) {
	jwtService := services.NewJWTService(testSecret)

	// 期限切れのトークンを同じシークレットで直接作成する
	claims := &services.Claims{
		UserID:   1,
		Username: "demo",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(tokenString)
	assert.ErrorIs(t, err, services.ErrTokenExpired)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	otherService := services.NewJWTService([]byte("another-secret"))
	tokenString, err := otherService.GenerateToken(1, "demo")
	require.NoError(t, err)

	jwtService := services.NewJWTService(testSecret)
	_, err = jwtService.ValidateToken(tokenString)
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
}

func TestValidateToken_Malformed(t *testing.T) {
	jwtService := services.NewJWTService(testSecret)

	_, err := jwtService.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, services.ErrTokenInvalid)

	_, err = jwtService.ValidateToken("")
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
}
