package services

import (
	"errors"
	"fmt"
	"log"

	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
)

// ErrInvalidCredentials はログイン失敗時のエラーです。
// ユーザー名の存在有無とパスワード誤りを呼び出し側が区別できないよう、
// どちらの場合もこのエラーひとつに潰します。
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService はユーザー関連のビジネスロジックを扱います。
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService は新しいUserServiceを作成します。
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser はパスワードをハッシュ化してユーザーを登録します。
// usernameの重複は repositories.ErrDuplicateUsername がそのまま伝播します。
func (s *UserService) RegisterUser(req models.UserRegisterRequest) (*models.User, error) {
	hashedPassword, err := repositories.HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
	}

	return s.userRepo.Create(newUser)
}

// AuthenticateUser はユーザーを認証し、成功したらユーザーを返します。
func (s *UserService) AuthenticateUser(req models.UserLoginRequest) (*models.User, error) {
	foundUser, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := repositories.VerifyPassword(foundUser.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GetUserByID はIDでユーザーを取得します (/api/auth/me 用)。
func (s *UserService) GetUserByID(id int) (*models.User, error) {
	return s.userRepo.FindByID(id)
}
