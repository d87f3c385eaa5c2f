package database

import (
	"fmt"
	"log"

	"budget/config"
	"budget/models"
	"budget/store"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 全局数据库连接（用户、密码重置令牌等身份数据始终走关系表）
var DB *gorm.DB

// Ledger 全局账本存储，按配置选择关系表实现或单机键值实现
var Ledger store.Ledger

// Init 初始化数据库连接与账本存储
func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		path := cfg.Database.Path
		if path == "" {
			path = "budget.db"
		}
		dialector = sqlite.Open(path)
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 连接池参数（sqlite 下同样安全）
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移身份相关表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
	); err != nil {
		return err
	}

	// 账本存储策略：同一 Ledger 接口的两种实现，业务层不感知差异
	switch cfg.Store.Mode {
	case "local":
		Ledger, err = store.NewLocalLedger(DB)
		if err != nil {
			return fmt.Errorf("初始化本地账本失败: %w", err)
		}
	case "remote", "":
		if err := DB.AutoMigrate(
			&models.MonthlyBudget{},
			&models.Transaction{},
		); err != nil {
			return err
		}
		Ledger = store.NewDBLedger(DB)
	default:
		return fmt.Errorf("不支持的账本存储模式: %s", cfg.Store.Mode)
	}

	log.Printf("数据库初始化成功 (driver=%s, store=%s)", cfg.Database.Driver, cfg.Store.Mode)
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
