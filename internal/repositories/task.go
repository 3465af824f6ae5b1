package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"go-task-manager/backend/internal/models"
)

// ErrTaskNotFound はタスクが見つからない場合のエラーです。
// 所有者スコープのクエリで一致しなかった場合 (他人のタスクを含む) もこれになります。
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository はtasksテーブルへのデータベース操作を行います。
// すべてのクエリ述語は id だけでなく必ず所有者の user_id を含みます。
// これがこのシステムにおける認可の境界です。
type TaskRepository struct {
	DB *sql.DB
}

// NewTaskRepository は新しいTaskRepositoryインスタンスを作成します。
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

// Create は新しいタスクを挿入し、IDを採番して返します。
func (r *TaskRepository) Create(t *models.Task) (*models.Task, error) {
	query := "INSERT INTO tasks (user_id, title, description, is_completed) VALUES (?, ?, ?, ?)"
	result, err := r.DB.Exec(query, t.UserID, t.Title, t.Description, t.IsCompleted)
	if err != nil {
		log.Printf("Failed to insert task: %v", err)
		return nil, fmt.Errorf("could not insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}
	t.ID = int(id)
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	return t, nil
}

// FindByOwner は指定ユーザーが所有するすべてのタスクを挿入順で返します。
// タスクが無い場合はnilではなく空スライスを返します (JSONで [] になるように)。
func (r *TaskRepository) FindByOwner(userID int) ([]*models.Task, error) {
	query := "SELECT id, user_id, title, description, is_completed, created_at, updated_at FROM tasks WHERE user_id = ? ORDER BY id"

	rows, err := r.DB.Query(query, userID)
	if err != nil {
		log.Printf("Failed to query tasks: %v", err)
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		var t models.Task
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			log.Printf("Failed to scan task: %v", err)
			return nil, fmt.Errorf("could not scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// FindByIDAndOwner は指定IDかつ指定所有者のタスクを取得します。
func (r *TaskRepository) FindByIDAndOwner(id, userID int) (*models.Task, error) {
	query := "SELECT id, user_id, title, description, is_completed, created_at, updated_at FROM tasks WHERE id = ? AND user_id = ?"

	var t models.Task
	err := r.DB.QueryRow(query, id, userID).Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		log.Printf("Failed to query task by ID: %v", err)
		return nil, fmt.Errorf("could not query task: %w", err)
	}

	return &t, nil
}

// Update は指定されたフィールドのみを適用する部分更新です。
// 所有者スコープのSELECTで取得してからGo側でマージするため、
// 値が変わらない更新でもRowsAffected=0による誤った「未検出」にはなりません。
func (r *TaskRepository) Update(id, userID int, req *models.TaskUpdateRequest) (*models.Task, error) {
	existing, err := r.FindByIDAndOwner(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.IsCompleted != nil {
		existing.IsCompleted = *req.IsCompleted
	}

	query := "UPDATE tasks SET title = ?, description = ?, is_completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?"
	if _, err := r.DB.Exec(query, existing.Title, existing.Description, existing.IsCompleted, id, userID); err != nil {
		log.Printf("Failed to update task: %v", err)
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	// 更新後の行を取得して返す
	return r.FindByIDAndOwner(id, userID)
}

// Delete は所有者が一致する場合のみタスクを削除します。
// 一致する行が無くてもエラーにしません (削除は冪等)。
func (r *TaskRepository) Delete(id, userID int) error {
	query := "DELETE FROM tasks WHERE id = ? AND user_id = ?"
	if _, err := r.DB.Exec(query, id, userID); err != nil {
		log.Printf("Failed to delete task: %v", err)
		return fmt.Errorf("could not delete task: %w", err)
	}
	return nil
}
