package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
	"go-task-manager/backend/testutil"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db, _, _, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	created := testutil.CreateTestUser(t, userRepo, "charlie", "charliepass")

	byName, err := userRepo.FindByUsername("charlie")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "charlie", byName.Username)
	assert.NotEmpty(t, byName.PasswordHash)

	byID, err := userRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "charlie", byID.Username)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db, _, _, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	// "alice" はSetupTestDBで投入済み。UNIQUE制約違反がConflictのシグナルになる。
	duplicate := &models.User{Username: "alice", PasswordHash: "somehash"}
	_, err := userRepo.Create(duplicate)
	assert.ErrorIs(t, err, repositories.ErrDuplicateUsername)
}

func TestUserRepository_NotFound(t *testing.T) {
	db, _, _, userRepo := testutil.SetupTestDB(t)
	defer db.Close()

	_, err := userRepo.FindByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	_, err = userRepo.FindByID(99999)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
