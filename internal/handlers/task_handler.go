package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-task-manager/backend/internal/models"
	"go-task-manager/backend/internal/repositories"
	"go-task-manager/backend/internal/services"
)

// TaskHandler はタスク関連のハンドラーを管理します。
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler は新しいTaskHandlerを作成します。
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// currentUserID はAuthMiddlewareがコンテキストに設定したユーザーIDを取り出します。
// 取得できない場合はレスポンスを書き込んだ上で false を返します。
func currentUserID(c *gin.Context) (int, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	userID, ok := userIDVal.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return 0, false
	}
	return userID, true
}

// taskIDParam はパスパラメータ :id を解析します。
func taskIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task id"})
		return 0, false
	}
	return id, true
}

// GetTasksHandler は認証ユーザーのタスク一覧を返します。
func (h *TaskHandler) GetTasksHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTasks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTaskHandler は新しいタスクを作成します。
func (h *TaskHandler) CreateTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	createdTask, err := h.taskService.CreateTask(req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, createdTask)
}

// UpdateTaskHandler はタスクを部分更新します。
// 他人のタスク・存在しないタスクはどちらも404です。
func (h *TaskHandler) UpdateTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindErrorResponse(err))
		return
	}

	updatedTask, err := h.taskService.UpdateTask(id, userID, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

// DeleteTaskHandler はタスクを削除します。
// 削除は冪等で、対象が存在しなくても204を返します。
func (h *TaskHandler) DeleteTaskHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(id, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.Status(http.StatusNoContent)
}
