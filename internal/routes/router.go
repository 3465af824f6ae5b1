// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"go-task-manager/backend/internal/handlers"
	"go-task-manager/backend/internal/repositories"
	"go-task-manager/backend/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
// 依存はここで明示的に組み立ててハンドラーに注入します (隠れたグローバル状態を持たない)。
func SetupRouter(db *sql.DB, jwtSecret []byte, frontendURL string) *gin.Engine {
	r := gin.Default()

	// CORS対策 (SPAフロントエンドからのアクセス用)
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{frontendURL}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// リポジトリ
	userRepo := repositories.NewUserRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	// サービス
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo)
	jwtService := services.NewJWTService(jwtSecret)

	// ハンドラー
	userHandler := handlers.NewUserHandler(userService, jwtService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// ルーティング
	r.GET("/api/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/api/auth/register", userHandler.RegisterHandler)
	r.POST("/api/auth/login", userHandler.LoginHandler)

	authorized := r.Group("/api")
	authorized.Use(AuthMiddleware(jwtService))
	{
		authorized.GET("/auth/me", userHandler.MeHandler)
		authorized.GET("/tasks", taskHandler.GetTasksHandler)
		authorized.POST("/tasks", taskHandler.CreateTaskHandler)
		authorized.PATCH("/tasks/:id", taskHandler.UpdateTaskHandler)
		authorized.DELETE("/tasks/:id", taskHandler.DeleteTaskHandler)
	}

	return r
}
