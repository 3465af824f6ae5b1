package models

import "time"

// Task はタスクのデータベース構造体を表します。
// JSONのフィールド名はフロントエンドが期待するcamelCaseに合わせています。
// Description はNULL許容のため *string (未設定なら JSON で null)。
type Task struct {
	ID          int       `json:"id,omitempty"`
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskCreateRequest はタスク作成リクエストの構造体です。
type TaskCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
}

// TaskUpdateRequest は部分更新 (PATCH) リクエストの構造体です。
// nilのフィールドは「変更しない」を意味します。
type TaskUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}
