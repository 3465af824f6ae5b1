package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
	"go-task-manager/backend/internal/services"
)

// UserHandler は認証関連のハンドラーを管理します。
type UserHandler struct {
	userService *services.UserService
	jwtService  *services.JWTService
}

// NewUserHandler は新しいUserHandlerを作成します。
func NewUserHandler(userService *services.UserService, jwtService *services.JWTService) *UserHandler {
	return &UserHandler{userService: userService, jwtService: jwtService}
}

// RegisterHandler はユーザー登録を処理します。
// 成功時は 201 で {token, user} を返します。userは公開ビューのみ。
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	user, err := h.userService.RegisterUser(req)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"message": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.Public()})
}

// LoginHandler はユーザーログインを処理します。
// ユーザー名の有無とパスワード誤りは区別せず、同じ401を返します。
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	user, err := h.userService.AuthenticateUser(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

// MeHandler はトークンに対応する現在のユーザーを返します。
// トークンは有効でもユーザー行が消えている場合は401になります。
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}
