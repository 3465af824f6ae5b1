package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-manager/backend/internal/services"
	"go-task-manager/backend/testutil"
)

func postJSON(t *testing.T, router http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterUser_Success(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "newuser",
		"password": "newpassword",
	})

	assert.Equal(t, http.StatusCreated, w.Code, "Expected HTTP Status Code 201 Created")

	var response struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err, "Response should be valid JSON")
	require.NotEmpty(t, response.Token, "Expected a token in the response")

	// トークンは同じシークレットで検証でき、登録したユーザー名に戻る
	jwtService := services.NewJWTService([]byte(testutil.TestJWTSecret))
	claims, err := jwtService.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "newuser", claims.Username)
	assert.EqualValues(t, response.User["id"], claims.UserID)

	// userは公開ビューのみ。認証情報が含まれないこと。
	assert.Equal(t, "newuser", response.User["username"])
	assert.NotContains(t, response.User, "password")
	assert.NotContains(t, response.User, "password_hash")
	assert.NotContains(t, response.User, "passwordHash")
}

func TestRegisterUser_MissingPassword(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "incompleteuser",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code, "Expected HTTP Status Code 400 Bad Request")
	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "password")
	assert.Equal(t, "password", response["field"])
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	// "alice" はSetupTestDBで投入済み
	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "alice",
		"password": "somepassword",
	})

	assert.Equal(t, http.StatusConflict, w.Code, "Expected HTTP Status Code 409 Conflict for duplicate username")
	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["message"], "Username already exists")
}

func TestLoginUser_Success(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code, "Expected HTTP Status Code 200 OK")
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	token, ok := response["token"].(string)
	assert.True(t, ok, "Token should be a string")
	assert.NotEmpty(t, token)

	user, ok := response["user"].(map[string]interface{})
	require.True(t, ok, "Expected a user object in the response")
	assert.Equal(t, "alice", user["username"])
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	// 存在するユーザー名 + 誤ったパスワード
	wrongPass := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)

	// 存在しないユーザー名
	unknownUser := postJSON(t, r, "/api/auth/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	// どちらの失敗か区別できないよう、メッセージは同一であること
	var a, b map[string]string
	require.NoError(t, json.Unmarshal(wrongPass.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(unknownUser.Body.Bytes(), &b))
	assert.Equal(t, a["message"], b["message"])
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	token, err := testutil.LoginAndGetToken(t, r, "alice", "password123")
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var user map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &user)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "password_hash")
}

func TestMe_RequiresAuth(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
