package services

import (
	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
)

// TaskService はタスク関連のビジネスロジックを扱います。
// 認可はリポジトリの所有者スコープクエリに委ねます。
type TaskService struct {
	taskRepo *repositories.TaskRepository
}

// NewTaskService は新しいTaskServiceを作成します。
func NewTaskService(taskRepo *repositories.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTask は認証ユーザーを所有者として新しいタスクを作成します。
func (s *TaskService) CreateTask(req models.TaskCreateRequest, userID int) (*models.Task, error) {
	task := &models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	}
	return s.taskRepo.Create(task)
}

// GetTasks は認証ユーザーが所有するタスクの一覧を取得します。
func (s *TaskService) GetTasks(userID int) ([]*models.Task, error) {
	return s.taskRepo.FindByOwner(userID)
}

// UpdateTask は認証ユーザーが所有するタスクを部分更新します。
// 他人のタスクは repositories.ErrTaskNotFound になります。
func (s *TaskService) UpdateTask(id, userID int, req *models.TaskUpdateRequest) (*models.Task, error) {
	return s.taskRepo.Update(id, userID, req)
}

// DeleteTask は認証ユーザーが所有するタスクを削除します (冪等)。
func (s *TaskService) DeleteTask(id, userID int) error {
	return s.taskRepo.Delete(id, userID)
}
