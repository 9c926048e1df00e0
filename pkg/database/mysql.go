// Package database 负责数据库连接的初始化。
package database

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bicara-go/internal/config"
	"bicara-go/pkg/log"
)

// InitMySQL 初始化 MySQL 数据库连接并配置连接池，返回连接句柄。
// 连接句柄由调用方显式传递给各 Repository，不使用包级全局变量。
func InitMySQL(cfg config.MySQLConfig) *gorm.DB {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", err)
	}

	// 连接池上限即服务对数据库的并发上限，见 config.yaml
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Info("MySQL database connected successfully")
	return db
}
