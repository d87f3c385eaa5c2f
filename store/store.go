// Package store 实现账本存储：月度预算 + 交易记录。
// 对外只暴露 Ledger 接口，关系表实现（DBLedger）与单机键值实现（LocalLedger）
// 共用同一套校验与错误分类，调用方不感知具体策略。
package store

import "budget/models"

// Ledger 账本存储接口
// 所有金额均为基准币种（USD）。month 取 0-11。
type Ledger interface {
	// GetOrCreateBudget 返回指定月份的预算，不存在则以 0 懒创建，幂等
	GetOrCreateBudget(userID uint, month, year int) (*models.MonthlyBudget, error)

	// SetBudgetAmount 设置月度预算金额，amount < 0 返回 ValidationError
	SetBudgetAmount(userID uint, month, year int, amount float64) (*models.MonthlyBudget, error)

	// AddTransaction 新增交易，校验失败返回 ValidationError 且不产生写入
	AddTransaction(userID uint, month, year int, title string, amount float64, kind string) (*models.Transaction, error)

	// UpdateTransaction 更新交易标题与金额，id 不存在返回 ErrNotFound
	UpdateTransaction(userID uint, id uint, title string, amount float64) (*models.Transaction, error)

	// DeleteTransaction 删除交易，id 不存在返回 ErrNotFound（重复删除第二次同样报错）
	DeleteTransaction(userID uint, id uint) error

	// ListTransactions 返回指定月份的交易快照，按创建时间倒序（最新在前）
	ListTransactions(userID uint, month, year int) ([]models.Transaction, error)

	// AllBudgets 返回该用户全部月份的预算快照，供累计汇总折叠
	AllBudgets(userID uint) ([]models.MonthlyBudget, error)

	// AllTransactions 返回该用户全部交易快照，供累计汇总折叠
	AllTransactions(userID uint) ([]models.Transaction, error)
}
