// Package testutil はテスト用の共有セットアップヘルパーを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"go-task-manager/backend/internal/database"
	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
	"go-task-manager/backend/internal/routes"
)

// TestJWTSecret はテスト用のJWT署名キーです。
const TestJWTSecret = "test-secret"

// SetupTestDB はテスト用のSQLiteデータベースを一時ディレクトリに作成し、
// スキーマとテストユーザーを投入した上でルーターと一緒に返します。
// 外部のデータベースサーバーは不要です。
func SetupTestDB(t *testing.T) (*sql.DB, *gin.Engine, *repositories.TaskRepository, *repositories.UserRepository) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	// SQLiteのロック競合を避けるため接続は1本に制限
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := database.Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// テストユーザーの挿入 (所有権テストのため2人)
	userRepo := repositories.NewUserRepository(db)
	CreateTestUser(t, userRepo, "alice", "password123")
	CreateTestUser(t, userRepo, "bob", "bobpassword")

	router := SetupTestRouter(t, db)
	taskRepo := repositories.NewTaskRepository(db)

	return db, router, taskRepo, userRepo
}

// SetupTestRouter はテスト用のGinルーターをセットアップします。
func SetupTestRouter(t *testing.T, db *sql.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter(db, []byte(TestJWTSecret), "http://localhost:3000")
}

// CreateTestUser はテスト用のユーザーを作成し、データベースに保存します。
func CreateTestUser(t *testing.T, userRepo *repositories.UserRepository, username, password string) *models.User {
	t.Helper()

	hashedPassword, err := repositories.HashPassword(password)
	require.NoError(t, err)

	newUser := &models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	createdUser, err := userRepo.Create(newUser)
	require.NoError(t, err)
	require.NotNil(t, createdUser)
	require.NotEqual(t, 0, createdUser.ID)
	return createdUser
}

// CreateTestTask はAPI経由でテスト用のタスクを作成します。
func CreateTestTask(t *testing.T, router *gin.Engine, token, title string, completed bool) *models.Task {
	t.Helper()

	taskPayload := map[string]interface{}{
		"title":       title,
		"isCompleted": completed,
	}
	body, _ := json.Marshal(taskPayload)

	req, _ := http.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBuffer(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code, "タスク作成に失敗しました: %s", resp.Body.String())

	var createdTask models.Task
	err := json.Unmarshal(resp.Body.Bytes(), &createdTask)
	require.NoError(t, err)
	return &createdTask
}

// LoginAndGetToken はログインAPIを呼び出してトークンを取得します。
func LoginAndGetToken(t *testing.T, router *gin.Engine, username, password string) (string, error) {
	t.Helper()

	loginPayload := map[string]string{
		"username": username,
		"password": password,
	}
	body, _ := json.Marshal(loginPayload)

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", resp.Code, resp.Body.String())
	}

	var loginRes map[string]interface{}
	err := json.Unmarshal(resp.Body.Bytes(), &loginRes)
	if err != nil {
		return "", fmt.Errorf("failed to unmarshal login response: %w", err)
	}

	token, ok := loginRes["token"].(string)
	if !ok {
		return "", errors.New("token not found or not a string in login response")
	}
	return token, nil
}
