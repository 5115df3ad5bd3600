package database

import (
	"fmt"
	"log"

	"garage/config"
	"garage/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 打开数据库并完成建表
// 数据库为数据目录下的单个 sqlite 文件，外键约束必须开启，
// 否则级联删除和引用保护都不会生效。
// 返回句柄由调用方持有并注入到各组件，不使用全局变量。
func Open(cfg *config.Config) (*gorm.DB, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	return OpenFile(path)
}

// OpenFile 按指定路径打开数据库（测试用）
func OpenFile(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// 把引擎层的唯一键/外键冲突翻译成 gorm 的标准错误
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite 单写者，限制为单连接避免 SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	// 自动迁移数据库表
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Expense{},
		&models.PaymentEntry{},
		&models.Attachment{},
		&models.Vehicle{},
		&models.VehicleDocument{},
	); err != nil {
		return nil, err
	}

	log.Printf("数据库初始化成功: %s", path)
	return db, nil
}
