package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// UserStatusLocked 锁定：不可登录
	UserStatusLocked = "locked"
	// UserStatusActive 正常：可登录
	UserStatusActive = "active"
)

// User 用户模型
// 匿名用户由系统自动创建（password 为空、is_anonymous=true），
// 关联邮箱后升级为正式账号，userID 不变，账本数据全部保留。
type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Username    string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password    string         `json:"-" gorm:"size:255"` // bcrypt 散列，匿名用户为空
	Email       string         `json:"email" gorm:"size:100;index"`
	IsAnonymous bool           `json:"is_anonymous" gorm:"default:false;index"`
	Status      string         `json:"status" gorm:"size:20;default:active;index"` // locked/active
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
