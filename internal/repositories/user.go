package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"

	"go-task-manager/backend/internal/models"
)

var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrUserNotFound      = errors.New("user not found")
)

// UserRepository はusersテーブルへのデータベース操作を行います。
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository は新しいUserRepositoryインスタンスを作成します。
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// isDuplicateKeyErr はUNIQUE制約違反かどうかをドライバー別に判定します。
// 事前の存在チェックでは同時登録の競合を防げないため、
// 制約違反エラーそのものをConflictのシグナルとして扱います。
func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return true
	}
	return false
}

// Create は新しいユーザーをデータベースに挿入します。
// usernameが既に存在する場合は ErrDuplicateUsername を返します。
func (r *UserRepository) Create(u *models.User) (*models.User, error) {
	query := "INSERT INTO users (username, password_hash) VALUES (?, ?)"
	result, err := r.DB.Exec(query, u.Username, u.PasswordHash)
	if err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrDuplicateUsername
		}
		log.Printf("Failed to insert user: %v", err)
		return nil, fmt.Errorf("could not insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	u.ID = int(id)
	// created_at / updated_at はDBで自動設定される
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()

	return u, nil
}

// FindByUsername はユーザー名でユーザーを検索します。
// ログイン時の認証と登録時の重複確認の両方で使われます。
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	query := "SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = ?"
	return r.findOne(query, username)
}

// FindByID はIDでユーザーを検索します。
func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := "SELECT id, username, password_hash, created_at, updated_at FROM users WHERE id = ?"
	return r.findOne(query, id)
}

func (r *UserRepository) findOne(query string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow(query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("Failed to query user: %v", err)
		return nil, fmt.Errorf("could not query user: %w", err)
	}
	return &u, nil
}
