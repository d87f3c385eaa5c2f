package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// KindExpense 支出
	KindExpense = "expense"
	// KindIncome 收入
	KindIncome = "income"
)

// MonthlyBudget 月度预算模型
// 每个用户每个 (month, year) 至多一条，首次访问时以 0 懒创建，从不删除。
// month 取 0-11，与前端 Date.getMonth() 对齐。
type MonthlyBudget struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"uniqueIndex:idx_user_month_year;not null"`
	Month        int            `json:"month" gorm:"uniqueIndex:idx_user_month_year;not null"`
	Year         int            `json:"year" gorm:"uniqueIndex:idx_user_month_year;not null"`
	BudgetAmount float64        `json:"budget_amount" gorm:"type:decimal(12,2);not null;default:0"` // 基准币种（USD）
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (MonthlyBudget) TableName() string {
	return "monthly_budgets"
}

// Transaction 交易记录模型
// amount 永远以基准币种（USD）存储，与录入时选择的展示币种无关。
type Transaction struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"index;not null"`
	MonthlyBudgetID uint           `json:"monthly_budget_id" gorm:"index;not null"`
	Title           string         `json:"title" gorm:"size:200;not null"`
	Amount          float64        `json:"amount" gorm:"type:decimal(12,2);not null"` // 基准币种（USD）
	Kind            string         `json:"kind" gorm:"size:10;not null;index"`        // expense/income
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsExpense 是否为支出
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}
