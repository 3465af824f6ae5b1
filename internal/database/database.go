// Package database はデータベース接続の初期化とスキーマ管理を行います。
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"go-task-manager/backend/internal/config"
)

// InitDB はデータベース接続を初期化します。
func InitDB(cfg *config.Config) *sql.DB {
	db, err := sql.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("Fatal: Failed to open database connection: %v", err)
	}
	if cfg.DBDriver == "sqlite3" {
		// SQLiteは単一ファイルのため、同時書き込みによるロック競合を避ける
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Fatal: Failed to ping database: %v", err)
	}
	log.Printf("Successfully connected to %s database!", cfg.DBDriver)
	return db
}

// mysqlSchema / sqliteSchema は同じ論理スキーマの方言別DDLです。
// username のUNIQUE制約が重複登録検出の唯一の防衛線となるため、
// どちらの方言でも必ず付与します。
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);`,
}

// Migrate は起動時にテーブルを作成します (存在する場合は何もしません)。
func Migrate(db *sql.DB, driver string) error {
	schema := mysqlSchema
	if driver == "sqlite3" {
		schema = sqliteSchema
	}
	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
